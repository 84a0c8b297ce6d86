// Package extract turns supported document formats into plain text. Each
// format registers an Extractor; dispatch is keyed by file extension, and
// unsupported extensions fail with ErrUnsupportedFormat for that one
// document only.
package extract

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrUnsupportedFormat is returned by Auto for extensions no extractor
// claims.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extractor extracts plain text from one document.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	Extract(ctx context.Context, path string) (string, error)

	// CanExtract reports whether this extractor handles the given path.
	CanExtract(path string) bool
}

var extractors []Extractor

// Register adds an extractor to the dispatch table. Called from the init
// function of each format file.
func Register(e Extractor) {
	extractors = append(extractors, e)
}

// ForPath returns the extractor claiming path, or nil.
func ForPath(path string) Extractor {
	for _, e := range extractors {
		if e.CanExtract(path) {
			return e
		}
	}
	return nil
}

// Auto extracts the file at path with whichever extractor claims it.
func Auto(ctx context.Context, path string) (string, error) {
	e := ForPath(path)
	if e == nil {
		return "", errors.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return e.Extract(ctx, path)
}
