package batch

import (
	"path/filepath"
	"strings"

	"github.com/dberrada/studyforge/internal/extract"
)

// BaseName returns the lecture base name for an input file: extension and
// the extraction suffix stripped. Output files are named from it.
func BaseName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimSuffix(base, extract.ExtractedSuffix)
}

// DisplayName is the lecture name substituted into cover templates:
// separators become spaces, upper-cased.
func DisplayName(base string) string {
	name := strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
