// Package wordspan computes whitespace-delimited word boundaries over a
// text and maps character offsets to word indices. Both operations are pure
// functions of their input; all offsets are byte offsets into the original
// string, matching what detectors return.
package wordspan

import "regexp"

// Span is a half-open character interval covering one word (a maximal run
// of non-whitespace characters).
type Span struct {
	Start int
	End   int
}

var wordRe = regexp.MustCompile(`\S+`)

// Spans returns the word spans of text in ascending, non-overlapping order.
// Empty or all-whitespace text yields an empty slice.
func Spans(text string) []Span {
	idx := wordRe.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(idx))
	for _, m := range idx {
		spans = append(spans, Span{Start: m[0], End: m[1]})
	}
	return spans
}

// WordIndex maps a character offset to the index of the word containing it.
// Detector offsets may land on punctuation or whitespace next to a word, so
// the mapping snaps rather than fails:
//
//   - inside a span [ws, we): that span's index
//   - in a gap before span i (or before all spans): max(0, i-1)
//   - at or past the end of the last span: len(spans) - 1
//   - empty spans: 0, a defined sentinel so callers can still build a
//     context for all-whitespace input
func WordIndex(charIdx int, spans []Span) int {
	if len(spans) == 0 {
		return 0
	}
	for i, s := range spans {
		if s.Start <= charIdx && charIdx < s.End {
			return i
		}
	}
	for i, s := range spans {
		if charIdx < s.Start {
			if i == 0 {
				return 0
			}
			return i - 1
		}
	}
	return len(spans) - 1
}
