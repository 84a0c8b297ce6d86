package entity_test

import (
	"testing"

	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func result() *entity.ProcessingResult {
	return &entity.ProcessingResult{
		OriginalText:  "Jean habite à Paris. Marie aussi.",
		ProcessedText: "[NOM] habite à [LIEU]. [NOM] aussi.",
		Entities: []entity.Entity{
			{Label: "PERSON", Text: "Jean", ReplacementText: "[NOM]"},
			{Label: "LOC", Text: "Paris", ReplacementText: "[LIEU]"},
			{Label: "PERSON", Text: "Marie", ReplacementText: "[NOM]"},
		},
	}
}

func TestLabelDistribution(t *testing.T) {
	r := result()

	assert.Equal(t, map[string]int{"PERSON": 2, "LOC": 1}, r.LabelDistribution())
	assert.Equal(t, map[string]int{"PERSON": 2}, r.LabelDistribution("PERSON"))
	assert.Equal(t, map[string]int{}, r.LabelDistribution("ORG"))
}

func TestGetStats(t *testing.T) {
	r := result()

	stats := r.GetStats()
	assert.Equal(t, 3, stats.EntityCount)
	assert.Equal(t, 2, stats.LabelDistribution["PERSON"])
	// 3 entities / 34 bytes of original text, rounded to three decimals.
	assert.Equal(t, 0.088, stats.Density)

	filtered := r.GetStats("LOC")
	assert.Equal(t, 1, filtered.EntityCount)
}

func TestGetStatsEmptyText(t *testing.T) {
	r := &entity.ProcessingResult{}
	stats := r.GetStats()
	assert.Equal(t, 0, stats.EntityCount)
	assert.Equal(t, 0.0, stats.Density)
}

func TestReplacementMap(t *testing.T) {
	r := result()
	r.Entities = append(r.Entities, entity.Entity{Label: "ORG", Text: "ACME", ReplacementText: ""})

	m := r.ReplacementMap()
	assert.Equal(t, "[NOM]", m["Jean"])
	assert.Equal(t, "[LIEU]", m["Paris"])
	_, ok := m["ACME"]
	assert.False(t, ok, "entities with empty replacements are excluded")
}

func TestCandidateValid(t *testing.T) {
	tests := []struct {
		name string
		c    entity.Candidate
		len  int
		want bool
	}{
		{name: "in range", c: entity.Candidate{Start: 0, End: 4}, len: 10, want: true},
		{name: "negative start", c: entity.Candidate{Start: -1, End: 4}, len: 10, want: false},
		{name: "end past text", c: entity.Candidate{Start: 0, End: 11}, len: 10, want: false},
		{name: "empty span", c: entity.Candidate{Start: 4, End: 4}, len: 10, want: false},
		{name: "inverted span", c: entity.Candidate{Start: 5, End: 4}, len: 10, want: false},
		{name: "span is whole text", c: entity.Candidate{Start: 0, End: 10}, len: 10, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Valid(tt.len))
		})
	}
}
