package extract_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anonydoc/anonydoc/pkg/extract"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func testCtx(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestAutoTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jean habite à Paris."), 0o600))

	text, err := extract.Auto(testCtx(t), path)
	require.NoError(t, err)
	assert.Equal(t, "Jean habite à Paris.", text)
}

func TestAutoTXTUppercaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOC.TXT")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	text, err := extract.Auto(testCtx(t), path)
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestAutoUnsupported(t *testing.T) {
	_, err := extract.Auto(testCtx(t), "archive.tar.gz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, extract.ErrUnsupportedFormat))
}

func TestAutoMissingTXT(t *testing.T) {
	_, err := extract.Auto(testCtx(t), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

// writeDocx builds a minimal valid .docx: a zip with word/document.xml.
func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestAutoDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jean habite </w:t></w:r><w:r><w:t>à Paris.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Deuxième paragraphe.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := extract.Auto(testCtx(t), path)
	require.NoError(t, err)
	assert.Equal(t, "Jean habite à Paris.\nDeuxième paragraphe.", text)
}

func TestDOCXWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("unrelated.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = extract.Auto(testCtx(t), path)
	require.Error(t, err)
}

func TestForPathDispatch(t *testing.T) {
	assert.NotNil(t, extract.ForPath("a.txt"))
	assert.NotNil(t, extract.ForPath("a.pdf"))
	assert.NotNil(t, extract.ForPath("a.docx"))
	assert.NotNil(t, extract.ForPath("a.xlsx"))
	assert.Nil(t, extract.ForPath("a.csv"))
}
