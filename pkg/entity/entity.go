package entity

// CharPosition is a half-open character interval into the original text.
type CharPosition struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// WordPosition is a half-open word-index interval, derived from a
// CharPosition via the wordspan mapper.
type WordPosition struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Candidate is one detected span as returned by a detector: character
// offsets into the source text, the verbatim matched text, a label and a
// confidence score in [0,1].
type Candidate struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Valid reports whether the candidate's offsets form a proper non-empty
// range inside a text of the given length. Detector output is not fully
// trusted, so callers reject (skip, log) invalid candidates rather than
// aborting the whole batch.
func (c Candidate) Valid(textLen int) bool {
	return c.Start >= 0 && c.End <= textLen && c.Start < c.End
}

// Entity is one detected span after replacement construction. Created once
// per candidate, never mutated afterwards.
type Entity struct {
	Label               string       `json:"label"`
	Text                string       `json:"text"`
	ReplacementText     string       `json:"replacement_text"`
	DetectionConfidence float64      `json:"detection_confidence"`
	CharPosition        CharPosition `json:"char_position"`
	WordPosition        WordPosition `json:"word_position"`
}

// ContextSnippet is the text surrounding one entity, bounded by Window
// words on each side and clipped at the text boundaries. Left and Right are
// substrings of the original (pre-replacement) text.
type ContextSnippet struct {
	Entity *Entity `json:"entity"`
	Left   string  `json:"left"`
	Right  string  `json:"right"`
	Window int     `json:"window"`
}

// ProcessingResult is the immutable snapshot of one processing run.
// Entities and Contexts are ordered by ascending character start, i.e.
// reading order of the original text.
type ProcessingResult struct {
	OriginalText  string           `json:"original_text"`
	ProcessedText string           `json:"processed_text"`
	Entities      []Entity         `json:"entities"`
	Contexts      []ContextSnippet `json:"contexts"`

	// PseudonymTable maps each entity's original text to its replacement,
	// restricted to entities with a non-empty replacement. Despite the
	// name it is populated in both anonymize and pseudonymize modes.
	PseudonymTable map[string]string `json:"pseudonym_table"`
}

// Stats summarizes one processing run.
type Stats struct {
	EntityCount       int            `json:"entity_count"`
	LabelDistribution map[string]int `json:"label_distribution"`
	Density           float64        `json:"density"`
}

// LabelDistribution counts entities per label, optionally restricted to the
// given labels.
func (r *ProcessingResult) LabelDistribution(labels ...string) map[string]int {
	var keep map[string]bool
	if len(labels) > 0 {
		keep = make(map[string]bool, len(labels))
		for _, l := range labels {
			keep[l] = true
		}
	}
	dist := make(map[string]int)
	for _, e := range r.Entities {
		if keep == nil || keep[e.Label] {
			dist[e.Label]++
		}
	}
	return dist
}

// GetStats computes entity count, per-label distribution and density
// (entities per character of original text, rounded to three decimals),
// optionally restricted to the given labels.
func (r *ProcessingResult) GetStats(labels ...string) Stats {
	dist := r.LabelDistribution(labels...)
	count := 0
	for _, n := range dist {
		count += n
	}
	density := 0.0
	if total := len(r.OriginalText); total > 0 {
		density = round3(float64(count) / float64(total))
	}
	return Stats{
		EntityCount:       count,
		LabelDistribution: dist,
		Density:           density,
	}
}

// ReplacementMap recomputes the original→replacement mapping from the
// entity list, skipping entities with an empty replacement.
func (r *ProcessingResult) ReplacementMap() map[string]string {
	m := make(map[string]string, len(r.Entities))
	for _, e := range r.Entities {
		if e.ReplacementText != "" {
			m[e.Text] = e.ReplacementText
		}
	}
	return m
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5)) / 1000
}
