package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// PDFExtractor extracts the plain-text content of PDF files.
type PDFExtractor struct{}

func init() {
	Register(&PDFExtractor{})
}

func (e *PDFExtractor) CanExtract(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("extracting text from PDF")

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", errors.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", errors.Errorf("extracting PDF text %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", errors.Errorf("reading PDF text %s: %w", path, err)
	}
	return buf.String(), nil
}
