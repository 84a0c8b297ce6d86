package pseudonym

import (
	"encoding/json"
	"io"

	"gitlab.com/tozd/go/errors"
)

// ExportJSON writes the reverse table (pseudonym → original) as one flat
// JSON object. This is the interchange format for reversal across process
// boundaries.
func (r *Registry) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.ReverseTable()); err != nil {
		return errors.Errorf("encoding pseudonym table: %w", err)
	}
	return nil
}

// ImportJSON reads a flat pseudonym→original JSON object and returns a
// Registry seeded from it. Per-label counters are rebuilt from the highest
// numeric suffix seen, so Generate continues without collisions.
func ImportJSON(rd io.Reader) (*Registry, error) {
	var table map[string]string
	dec := json.NewDecoder(rd)
	if err := dec.Decode(&table); err != nil {
		return nil, errors.Errorf("decoding pseudonym table: %w", err)
	}

	reg := NewRegistry()
	for pseudo, original := range table {
		reg.seed(pseudo, original)
	}
	return reg, nil
}
