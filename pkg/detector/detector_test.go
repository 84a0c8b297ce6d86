package detector_test

import (
	"context"
	"testing"

	"github.com/anonydoc/anonydoc/pkg/detector"
	"github.com/anonydoc/anonydoc/pkg/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type fakeDetector struct {
	candidates []entity.Candidate
	err        error
}

func (f *fakeDetector) Detect(_ context.Context, _ string, _ []string) ([]entity.Candidate, error) {
	return f.candidates, f.err
}

func testCtx(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestFilterByScore(t *testing.T) {
	cands := []entity.Candidate{
		{Label: "A", Score: 0.9},
		{Label: "B", Score: 0.5},
		{Label: "C", Score: 0.49},
	}

	got := detector.FilterByScore(cands, 0.5)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Label)
	assert.Equal(t, "B", got[1].Label)

	assert.Empty(t, detector.FilterByScore(nil, 0.5))
}

func TestMultiMergesCandidates(t *testing.T) {
	a := &fakeDetector{candidates: []entity.Candidate{{Label: "A", Start: 0, End: 1, Text: "x"}}}
	b := &fakeDetector{candidates: []entity.Candidate{{Label: "B", Start: 2, End: 3, Text: "y"}}}

	m := detector.NewMulti(a, b)
	got, err := m.Detect(testCtx(t), "xy z", []string{"A", "B"})
	require.NoError(t, err)

	labels := []string{got[0].Label, got[1].Label}
	assert.ElementsMatch(t, []string{"A", "B"}, labels)
}

func TestMultiIsolatesFailingDetector(t *testing.T) {
	ok := &fakeDetector{candidates: []entity.Candidate{{Label: "A", Start: 0, End: 1, Text: "x"}}}
	broken := &fakeDetector{err: errors.New("sidecar unreachable")}

	m := detector.NewMulti(ok, broken)
	got, err := m.Detect(testCtx(t), "x", []string{"A"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Label)
}

func TestMultiEmpty(t *testing.T) {
	m := detector.NewMulti()
	got, err := m.Detect(testCtx(t), "text", []string{"A"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
