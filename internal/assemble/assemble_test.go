package assemble

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemplate authors a minimal cover template on disk.
func writeTemplate(t *testing.T, body ...string) string {
	t.Helper()
	doc := docx.New().WithDefaultTheme()
	for _, line := range body {
		doc.AddParagraph().AddText(line)
	}
	path := filepath.Join(t.TempDir(), "template.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = doc.WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return path
}

func docText(t *testing.T, data []byte) string {
	t.Helper()
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if text, ok := rc.(*docx.Text); ok {
					sb.WriteString(text.Text)
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func liveText(t *testing.T, doc *docx.Docx) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	return docText(t, buf.Bytes())
}

func TestRenderTemplate_SubstitutesPlaceholders(t *testing.T) {
	path := writeTemplate(t, "{{lecture_name}}", "Prepared from {{source}}")

	doc, err := RenderTemplate(path, map[string]string{
		"lecture_name": "AUTOIMMUNE HEPATITIS",
		"source":       "lecture notes",
	})
	require.NoError(t, err)

	text := liveText(t, doc)
	assert.Contains(t, text, "AUTOIMMUNE HEPATITIS")
	assert.Contains(t, text, "Prepared from lecture notes")
	assert.NotContains(t, text, "{{")
}

func TestRenderTemplate_MissingPlaceholder(t *testing.T) {
	path := writeTemplate(t, "{{lecture_name}}")

	_, err := RenderTemplate(path, map[string]string{
		"lecture_name": "X",
		"author":       "Y",
	})
	require.Error(t, err)

	var tmplErr *TemplateError
	require.True(t, errors.As(err, &tmplErr))
	assert.Equal(t, "author", tmplErr.Placeholder)
	assert.Equal(t, path, tmplErr.Path)
}

func TestRenderTemplate_FileMissing(t *testing.T) {
	_, err := RenderTemplate(filepath.Join(t.TempDir(), "nope.docx"), nil)
	assert.Error(t, err)
}

func TestConvertMarkdown_BlocksAndTables(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	markdown := strings.Join([]string{
		"## Clinical Features",
		"",
		"Fatigue is the most common symptom.",
		"",
		"- insidious onset",
		"- arthralgia",
		"",
		"| Key Point | Details |",
		"| --- | --- |",
		"| Triad | hypergammaglobulinemia<br>autoantibodies |",
	}, "\n")

	err := ConvertMarkdown(doc, markdown, Options{Font: "Poppins", BoldKeyColumn: true})
	require.NoError(t, err)

	text := liveText(t, doc)
	assert.Contains(t, text, "Clinical Features")
	assert.Contains(t, text, "Fatigue is the most common symptom.")
	assert.Contains(t, text, "• insidious onset")
	assert.Contains(t, text, "• arthralgia")
}

func TestAssemble_CoverThenContent(t *testing.T) {
	path := writeTemplate(t, "{{lecture_name}}")

	data, err := Assemble("# Summary\n\nOne paragraph.", path,
		map[string]string{"lecture_name": "CARDIOLOGY"}, Options{Font: "Poppins"})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	text := docText(t, data)
	assert.Contains(t, text, "CARDIOLOGY")
	assert.Contains(t, text, "Summary")
	assert.Contains(t, text, "One paragraph.")
}

func TestAssemble_TemplateErrorPropagates(t *testing.T) {
	path := writeTemplate(t, "no placeholders here")

	_, err := Assemble("content", path, map[string]string{"lecture_name": "X"}, Options{})
	var tmplErr *TemplateError
	require.True(t, errors.As(err, &tmplErr))
}

func TestAssemble_QuestionTableMarkdown(t *testing.T) {
	path := writeTemplate(t, "{{lecture_name}}")
	markdown := strings.Join([]string{
		"| # | Question | Answer |",
		"|---|---|---|",
		"| 1 | Which antibody characterizes type 1 disease?<br>a) ANA<br>b) LKM-1<br>c) AMA<br>d) p-ANCA<br>e) none | ANA |",
		"| 2 | First-line therapy?<br>a) Azathioprine<br>b) Prednisone<br>c) Rituximab<br>d) UDCA<br>e) Observation | Prednisone |",
	}, "\n")

	data, err := Assemble(markdown, path, map[string]string{"lecture_name": "HEPATOLOGY"}, Options{
		Font:         "Poppins",
		BoldCellLead: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	_, err = docx.Parse(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
}
