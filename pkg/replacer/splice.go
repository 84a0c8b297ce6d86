package replacer

import "sort"

// Splice is one raw replacement: substitute Replacement for the half-open
// character range [Start, End).
type Splice struct {
	Start       int
	End         int
	Replacement string
}

// SpliceAll applies all splices to text, highest start first. It performs
// no validation: spans must lie inside the text and must not overlap, or
// the result is undefined. Most callers want Replacer.Replace, which
// validates; this is the low-level primitive.
func SpliceAll(text string, splices []Splice) string {
	ordered := make([]Splice, len(splices))
	copy(ordered, splices)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})
	for _, s := range ordered {
		text = text[:s.Start] + s.Replacement + text[s.End:]
	}
	return text
}

// Overlaps reports whether [start, end) intersects any of the given spans.
func Overlaps(start, end int, spans []Splice) bool {
	for _, s := range spans {
		if max(start, s.Start) < min(end, s.End) {
			return true
		}
	}
	return false
}
