// Package extract pulls plain text out of lecture PDFs and writes it as
// Markdown next to the other lecture files, so the generation pipeline only
// ever reads Markdown.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Extractor converts PDFs to Markdown files. When FallbackPdftotext is set
// and the Go library gets nothing out of a file, pdftotext is tried before
// giving up.
type Extractor struct {
	FallbackPdftotext bool
	Log               *slog.Logger
}

// ExtractedSuffix is appended to the output base name, so extracted files
// are recognizable and can be skipped on re-runs.
const ExtractedSuffix = "_extracted"

// Dir extracts every .pdf in inputDir into outDir. Files whose output
// already exists are skipped. Returns the number of files newly extracted;
// per-file failures are logged and do not stop the scan.
func (e *Extractor) Dir(inputDir, outDir string) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("read input dir: %w", err)
	}

	extracted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())
		out, err := e.File(path, outDir)
		if err != nil {
			e.Log.Error("extraction failed", "file", entry.Name(), "error", err)
			continue
		}
		if out != "" {
			extracted++
		}
	}
	return extracted, nil
}

// File extracts one PDF into outDir as <base>_extracted.md. Returns the
// output path, or "" if the output already existed.
func (e *Extractor) File(pdfPath, outDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outPath := filepath.Join(outDir, base+ExtractedSuffix+".md")

	if _, err := os.Stat(outPath); err == nil {
		e.Log.Info("already extracted, skipping", "file", filepath.Base(pdfPath))
		return "", nil
	}

	text, err := e.Text(pdfPath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text extracted from %s", filepath.Base(pdfPath))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	e.Log.Info("extracted", "file", filepath.Base(pdfPath), "output", filepath.Base(outPath))
	return outPath, nil
}

// Text returns the plain text of a PDF, pages separated by blank lines.
func (e *Extractor) Text(path string) (string, error) {
	text, err := extractPDFText(path)
	if (err != nil || strings.TrimSpace(text) == "") && e.FallbackPdftotext {
		text, err = extractPdftotext(path)
	}
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var pages []string
	for _, page := range strings.Split(text, "\f") {
		if page = strings.TrimSpace(page); page != "" {
			pages = append(pages, page)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
