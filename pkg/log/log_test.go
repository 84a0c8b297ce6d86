package log_test

import (
	"bytes"
	"testing"

	"github.com/anonydoc/anonydoc/pkg/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestLogDocOperation(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, zerolog.Disabled)

	l.LogDocOperation(log.DocOperation{
		Path:     "report.txt",
		Mode:     "anonymize",
		Entities: 3,
	})

	out := buf.String()
	assert.Contains(t, out, "report.txt")
	assert.Contains(t, out, "anonymize")
	assert.Contains(t, out, "3 entities")
}

func TestLogDocOperationError(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, zerolog.Disabled)

	l.LogDocOperation(log.DocOperation{
		Path: "broken.pdf",
		Mode: "anonymize",
		Err:  errors.New("unsupported file format"),
	})

	out := buf.String()
	assert.Contains(t, out, "broken.pdf")
	assert.Contains(t, out, "unsupported file format")
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, zerolog.Disabled)

	l.Header("processing batch")
	assert.Contains(t, buf.String(), "anonydoc")
	assert.Contains(t, buf.String(), "processing batch")
}
