// Copyright 2025 the anonydoc authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package replacer rewrites text by splicing replacements into detected
// entity spans. Spans are applied right-to-left (highest start first) so a
// splice never shifts the offsets of the spans still to be applied: only
// text after the still-untouched prefix has changed length.
package replacer

import (
	"context"
	"sort"

	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/anonydoc/anonydoc/pkg/wordspan"
	"github.com/rs/zerolog"
)

// Rule decides the replacement text for one candidate, given its label and
// its verbatim source text.
type Rule func(label, text string) string

// Replacer builds ProcessingResults. The window is the number of words kept
// on each side of an entity in its context snippet.
type Replacer struct {
	window int
}

// New creates a Replacer with the given context window.
func New(window int) *Replacer {
	return &Replacer{window: window}
}

// Replace applies rule to every valid candidate span of text and returns
// the structured result. Candidates with out-of-range or inverted offsets
// are skipped and logged; a candidate overlapping an already accepted one
// is dropped (the span with the higher start wins). With zero usable
// candidates the processed text equals the original.
//
// Entities and contexts in the result are ordered by ascending character
// start — reading order — regardless of the internal right-to-left
// application order.
func (r *Replacer) Replace(ctx context.Context, text string, candidates []entity.Candidate, rule Rule) *entity.ProcessingResult {
	logger := zerolog.Ctx(ctx)

	spans := wordspan.Spans(text)

	// Highest start first. Stable so equal-start duplicates keep detector
	// order and the overlap filter sees them adjacently.
	ordered := make([]entity.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	entities := make([]entity.Entity, 0, len(ordered))
	splices := make([]Splice, 0, len(ordered))

	for _, c := range ordered {
		if !c.Valid(len(text)) {
			logger.Warn().
				Int("start", c.Start).
				Int("end", c.End).
				Str("label", c.Label).
				Msg("skipping candidate with invalid span")
			continue
		}
		if Overlaps(c.Start, c.End, splices) {
			logger.Warn().
				Int("start", c.Start).
				Int("end", c.End).
				Str("label", c.Label).
				Msg("dropping candidate overlapping an accepted span")
			continue
		}

		replacement := rule(c.Label, c.Text)

		wStart := wordspan.WordIndex(c.Start, spans)
		// End is exclusive: probe the last included character.
		wEnd := wordspan.WordIndex(c.End-1, spans) + 1

		entities = append(entities, entity.Entity{
			Label:               c.Label,
			Text:                c.Text,
			ReplacementText:     replacement,
			DetectionConfidence: c.Score,
			CharPosition:        entity.CharPosition{Start: c.Start, End: c.End},
			WordPosition:        entity.WordPosition{Start: wStart, End: wEnd},
		})

		splices = append(splices, Splice{Start: c.Start, End: c.End, Replacement: replacement})

		logger.Debug().
			Str("label", c.Label).
			Str("text", c.Text).
			Str("replacement", replacement).
			Int("start", c.Start).
			Int("end", c.End).
			Msg("replaced span")
	}

	redacted := SpliceAll(text, splices)

	// Back to reading order for consumers.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].CharPosition.Start < entities[j].CharPosition.Start
	})

	contexts := r.buildContexts(text, spans, entities)

	table := make(map[string]string, len(entities))
	for _, e := range entities {
		if e.ReplacementText != "" {
			table[e.Text] = e.ReplacementText
		}
	}

	return &entity.ProcessingResult{
		OriginalText:   text,
		ProcessedText:  redacted,
		Entities:       entities,
		Contexts:       contexts,
		PseudonymTable: table,
	}
}

// buildContexts slices the original text around each entity, bounded by the
// window in words on each side and clipped at the text boundaries. Context
// windows use the pre-replacement word spans, so snippets always show the
// source text.
func (r *Replacer) buildContexts(text string, spans []wordspan.Span, entities []entity.Entity) []entity.ContextSnippet {
	contexts := make([]entity.ContextSnippet, 0, len(entities))
	total := len(spans)

	for i := range entities {
		ent := &entities[i]

		var left, right string
		if total > 0 {
			cwStart := max(0, ent.WordPosition.Start-r.window)
			cwEnd := min(total, ent.WordPosition.End+r.window)
			if cwEnd > cwStart {
				cs := spans[cwStart].Start
				ce := spans[cwEnd-1].End
				if cs < ent.CharPosition.Start {
					left = text[cs:ent.CharPosition.Start]
				}
				if ce > ent.CharPosition.End {
					right = text[ent.CharPosition.End:ce]
				}
			}
		}

		contexts = append(contexts, entity.ContextSnippet{
			Entity: ent,
			Left:   left,
			Right:  right,
			Window: r.window,
		})
	}
	return contexts
}
