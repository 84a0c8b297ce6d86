package extract

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// TXTExtractor reads plain-text files as-is.
type TXTExtractor struct{}

func init() {
	Register(&TXTExtractor{})
}

func (e *TXTExtractor) CanExtract(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".txt")
}

func (e *TXTExtractor) Extract(ctx context.Context, path string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading text file")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading text file %s: %w", path, err)
	}
	return string(data), nil
}
