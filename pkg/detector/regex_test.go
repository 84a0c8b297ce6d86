package detector_test

import (
	"testing"

	"github.com/anonydoc/anonydoc/pkg/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexDetectorEmail(t *testing.T) {
	d := detector.NewRegexDetector()
	text := "contact jean.dupont@example.com please"

	got, err := d.Detect(testCtx(t), text, []string{detector.LabelEmail})
	require.NoError(t, err)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "jean.dupont@example.com", c.Text)
	assert.Equal(t, text[c.Start:c.End], c.Text, "offsets must address the matched text")
	assert.Equal(t, detector.LabelEmail, c.Label)
	assert.Equal(t, 1.0, c.Score)
}

func TestRegexDetectorLabelRestriction(t *testing.T) {
	d := detector.NewRegexDetector()
	text := "mail me at a@b.example or call 555-123-4567"

	got, err := d.Detect(testCtx(t), text, []string{detector.LabelPhone})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, detector.LabelPhone, c.Label)
	}

	got, err = d.Detect(testCtx(t), text, nil)
	require.NoError(t, err)
	assert.Empty(t, got, "no labels requested means no candidates")
}

func TestRegexDetectorSSN(t *testing.T) {
	d := detector.NewRegexDetector()

	got, err := d.Detect(testCtx(t), "ssn 123-45-6789 on file", []string{detector.LabelSSN})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "123-45-6789", got[0].Text)
}

func TestRegexDetectorCreditCardLuhn(t *testing.T) {
	d := detector.NewRegexDetector()

	// 4532015112830366 passes Luhn; 4532015112830367 does not.
	got, err := d.Detect(testCtx(t), "card 4532 0151 1283 0366", []string{detector.LabelCreditCard})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "4532 0151 1283 0366", got[0].Text)

	got, err = d.Detect(testCtx(t), "card 4532 0151 1283 0367", []string{detector.LabelCreditCard})
	require.NoError(t, err)
	assert.Empty(t, got, "Luhn-invalid numbers are rejected")
}

func TestRegexDetectorEmptyText(t *testing.T) {
	d := detector.NewRegexDetector()
	got, err := d.Detect(testCtx(t), "", []string{detector.LabelEmail})
	require.NoError(t, err)
	assert.Empty(t, got)
}
