package extract

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor() *Extractor {
	return &Extractor{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestFile_SkipsAlreadyExtracted(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "cardio.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("not a real pdf"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardio_extracted.md"), []byte("done"), 0o644))

	out, err := testExtractor().File(pdfPath, dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFile_InvalidPDFFails(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("garbage"), 0o644))

	_, err := testExtractor().File(pdfPath, dir)
	assert.Error(t, err)
}

func TestDir_FailuresDoNotStopScan(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.pdf"), []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.pdf"), []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o644))

	n, err := testExtractor().Dir(in, out)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDir_MissingInputDirFails(t *testing.T) {
	_, err := testExtractor().Dir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(t, err)
}
