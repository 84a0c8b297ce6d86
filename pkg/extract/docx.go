package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DOCXExtractor extracts paragraph text from DOCX files. A .docx is a zip
// archive whose word/document.xml carries the text in <w:t> runs grouped
// into <w:p> paragraphs; paragraphs are joined with newlines.
type DOCXExtractor struct{}

func init() {
	Register(&DOCXExtractor{})
}

func (e *DOCXExtractor) CanExtract(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".docx")
}

func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("extracting text from DOCX")

	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", errors.Errorf("opening DOCX %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", errors.Errorf("opening document.xml in %s: %w", path, err)
		}
		defer rc.Close()

		text, err := documentText(rc)
		if err != nil {
			return "", errors.Errorf("parsing document.xml in %s: %w", path, err)
		}
		return text, nil
	}
	return "", errors.Errorf("no word/document.xml in %s", path)
}

// documentText walks the XML token stream collecting the character data of
// every <w:t> run, emitting a newline at the end of each <w:p> paragraph.
func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
