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

package processor

import (
	"context"
	"sort"

	"github.com/anonydoc/anonydoc/pkg/detector"
	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/anonydoc/anonydoc/pkg/pseudonym"
	"github.com/anonydoc/anonydoc/pkg/replacer"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Defaults applied by New when an option is zero.
const (
	DefaultThreshold     = 0.5
	DefaultContextWindow = 20
)

// Options carries the injected collaborators and tuning for a Processor.
type Options struct {
	Detector      detector.Detector
	Registry      *pseudonym.Registry
	Threshold     float64 // minimum detection score, in [0,1]
	ContextWindow int     // words of context on each side of an entity
}

// Processor is the text-transformation orchestrator.
type Processor struct {
	detector  detector.Detector
	registry  *pseudonym.Registry
	threshold float64
	replacer  *replacer.Replacer
}

// New creates a Processor. A nil Registry gets a fresh one; zero Threshold
// and ContextWindow get the defaults.
func New(opts Options) *Processor {
	if opts.Registry == nil {
		opts.Registry = pseudonym.NewRegistry()
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.ContextWindow == 0 {
		opts.ContextWindow = DefaultContextWindow
	}
	return &Processor{
		detector:  opts.Detector,
		registry:  opts.Registry,
		threshold: opts.Threshold,
		replacer:  replacer.New(opts.ContextWindow),
	}
}

// Registry returns the shared pseudonym registry.
func (p *Processor) Registry() *pseudonym.Registry {
	return p.registry
}

// detect queries the detector and applies the confidence threshold.
func (p *Processor) detect(ctx context.Context, text string, labels []string) ([]entity.Candidate, error) {
	logger := zerolog.Ctx(ctx)

	raw, err := p.detector.Detect(ctx, text, labels)
	if err != nil {
		return nil, errors.Errorf("detecting entities: %w", err)
	}

	filtered := detector.FilterByScore(raw, p.threshold)
	logger.Debug().
		Int("raw", len(raw)).
		Int("kept", len(filtered)).
		Float64("threshold", p.threshold).
		Msg("filtered detector candidates")
	return filtered, nil
}

// Anonymize replaces detected entities with the fixed tags from
// labelToTag. The detector is queried for exactly the mapped labels. A
// detected label missing from the mapping passes through verbatim —
// "detected but no tag configured" is a deliberate pass-through, not a
// failure.
func (p *Processor) Anonymize(ctx context.Context, text string, labelToTag map[string]string) (*entity.ProcessingResult, error) {
	labels := make([]string, 0, len(labelToTag))
	for l := range labelToTag {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	candidates, err := p.detect(ctx, text, labels)
	if err != nil {
		return nil, err
	}

	rule := func(label, span string) string {
		if tag, ok := labelToTag[label]; ok {
			return tag
		}
		return span
	}
	return p.replacer.Replace(ctx, text, candidates, rule), nil
}

// Pseudonymize replaces detected entities with reversible pseudonyms from
// the shared registry.
func (p *Processor) Pseudonymize(ctx context.Context, text string, labels []string) (*entity.ProcessingResult, error) {
	candidates, err := p.detect(ctx, text, labels)
	if err != nil {
		return nil, err
	}
	return p.replacer.Replace(ctx, text, candidates, p.registry.Generate), nil
}

// ReversePseudonymization restores original mentions using the registry's
// accumulated state. Unknown pseudonyms are left verbatim; supplying a
// registry populated from the right run (or an imported table) is the
// caller's responsibility.
func (p *Processor) ReversePseudonymization(text string) string {
	return p.registry.Reverse(text)
}
