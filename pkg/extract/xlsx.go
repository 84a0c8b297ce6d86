package extract

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// XLSXExtractor extracts cell text from XLSX workbooks: cells joined with
// tabs, rows with newlines, sheets separated by a blank line.
type XLSXExtractor struct{}

func init() {
	Register(&XLSXExtractor{})
}

func (e *XLSXExtractor) CanExtract(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

func (e *XLSXExtractor) Extract(ctx context.Context, path string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("extracting text from XLSX")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", errors.Errorf("opening XLSX %s: %w", path, err)
	}
	defer f.Close()

	var sheets []string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", errors.Errorf("reading sheet %s of %s: %w", name, path, err)
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		sheets = append(sheets, strings.Join(lines, "\n"))
	}
	return strings.Join(sheets, "\n\n"), nil
}
