// Package detector defines the entity-detection boundary. The core treats
// detection as a black box returning {start, end, label, text, score}
// candidates; this package provides the interface, an HTTP client for a
// GLiNER-style NER sidecar, a local regex detector for structured PII, and
// a fan-out combinator.
package detector

import (
	"context"
	"sync"

	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/rs/zerolog"
)

// Detector produces entity candidates for a text, restricted to the given
// labels. Implementations may block on I/O; they must honor ctx.
type Detector interface {
	Detect(ctx context.Context, text string, labels []string) ([]entity.Candidate, error)
}

// FilterByScore returns the candidates whose score meets the threshold.
func FilterByScore(candidates []entity.Candidate, threshold float64) []entity.Candidate {
	out := make([]entity.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// Multi fans a Detect call out to several detectors concurrently and merges
// their candidates. A failing detector is isolated: it logs a warning and
// contributes nothing, so one broken sidecar never sinks the batch.
type Multi struct {
	detectors []Detector
}

// NewMulti creates a Multi over the given detectors.
func NewMulti(detectors ...Detector) *Multi {
	return &Multi{detectors: detectors}
}

// Detect implements Detector.
func (m *Multi) Detect(ctx context.Context, text string, labels []string) ([]entity.Candidate, error) {
	if len(m.detectors) == 0 {
		return nil, nil
	}

	logger := zerolog.Ctx(ctx)

	results := make([][]entity.Candidate, len(m.detectors))
	var wg sync.WaitGroup
	for i, d := range m.detectors {
		wg.Add(1)
		go func(i int, d Detector) {
			defer wg.Done()
			cands, err := d.Detect(ctx, text, labels)
			if err != nil {
				logger.Warn().Err(err).Msg("detector failed, skipping its candidates")
				return
			}
			results[i] = cands
		}(i, d)
	}
	wg.Wait()

	var all []entity.Candidate
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
