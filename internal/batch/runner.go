// Package batch walks the lecture directory and produces every enabled
// artifact for every Markdown file. Each file is processed start to finish
// before the next begins, and a failed artifact never stops the batch:
// failures are logged, recorded in the report, and the run moves on.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dberrada/studyforge/internal/assemble"
	"github.com/dberrada/studyforge/internal/config"
	"github.com/dberrada/studyforge/internal/extract"
	"github.com/dberrada/studyforge/internal/generate"
	"github.com/dberrada/studyforge/internal/mindmap"
	"github.com/dberrada/studyforge/internal/render"
)

// Status is the outcome of one artifact for one file.
type Status string

const (
	StatusCompleted Status = "completed"
	// StatusPartial means output was written but some content was degraded,
	// rejected, or left unverified.
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// ArtifactResult records one artifact outcome.
type ArtifactResult struct {
	Kind   string
	Status Status
	Detail string
}

// FileReport collects the artifact outcomes for one lecture file.
type FileReport struct {
	File    string
	Lecture string
	Results []ArtifactResult
}

// Failed reports whether every artifact of the file failed.
func (r FileReport) Failed() bool {
	for _, res := range r.Results {
		if res.Status != StatusFailed {
			return false
		}
	}
	return len(r.Results) > 0
}

const outputFont = "Poppins"

// Runner executes the batch.
type Runner struct {
	pipeline  *generate.Pipeline
	extractor *extract.Extractor
	cfg       config.Config
	log       *slog.Logger
}

func NewRunner(p *generate.Pipeline, e *extract.Extractor, cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{pipeline: p, extractor: e, cfg: cfg, log: log}
}

// Run extracts pending PDFs when configured, then processes every Markdown
// file in the lecture directory. Returns the per-file reports; an error only
// for setup problems, never for per-file failures.
func (r *Runner) Run(ctx context.Context) ([]FileReport, error) {
	if r.cfg.RunExtraction && r.extractor != nil {
		n, err := r.extractor.Dir(r.cfg.InputDir, r.cfg.LectureDir)
		if err != nil {
			r.log.Warn("extraction scan failed", "error", err)
		} else if n > 0 {
			r.log.Info("extracted lecture files", "count", n)
		}
	}

	entries, err := os.ReadDir(r.cfg.LectureDir)
	if err != nil {
		return nil, fmt.Errorf("read lecture dir: %w", err)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var reports []FileReport
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}
		report := r.ProcessFile(ctx, filepath.Join(r.cfg.LectureDir, entry.Name()))
		reports = append(reports, report)
	}

	completed, partial, failed := 0, 0, 0
	for _, rep := range reports {
		for _, res := range rep.Results {
			switch res.Status {
			case StatusCompleted:
				completed++
			case StatusPartial:
				partial++
			case StatusFailed:
				failed++
			}
		}
	}
	r.log.Info("batch finished", "files", len(reports), "completed", completed, "partial", partial, "failed", failed)
	return reports, nil
}

// ProcessFile generates every enabled artifact for one lecture file.
func (r *Runner) ProcessFile(ctx context.Context, mdPath string) FileReport {
	base := BaseName(mdPath)
	report := FileReport{File: filepath.Base(mdPath), Lecture: DisplayName(base)}
	log := r.log.With("file", report.File)

	data, err := os.ReadFile(mdPath)
	if err != nil || strings.TrimSpace(string(data)) == "" {
		log.Error("unreadable or empty lecture file", "error", err)
		report.Results = append(report.Results, ArtifactResult{Kind: "all", Status: StatusFailed, Detail: "unreadable or empty input"})
		return report
	}
	text := string(data)
	tmplCtx := map[string]string{"lecture_name": report.Lecture}

	record := func(kind string, status Status, detail string) {
		report.Results = append(report.Results, ArtifactResult{Kind: kind, Status: status, Detail: detail})
		switch status {
		case StatusFailed:
			log.Error("artifact failed", "artifact", kind, "reason", detail)
		case StatusPartial:
			log.Warn("artifact partially degraded", "artifact", kind, "detail", detail)
		default:
			log.Info("artifact completed", "artifact", kind)
		}
	}

	if r.cfg.Artifacts.MCQ {
		status, detail := r.mcqs(ctx, text, base, tmplCtx, log)
		record("mcq", status, detail)
	}
	if r.cfg.Artifacts.Summary {
		status, detail := r.sections(ctx, text, base, tmplCtx, "summary")
		record("summary", status, detail)
	}
	if r.cfg.Artifacts.Remake {
		status, detail := r.sections(ctx, text, base, tmplCtx, "remake")
		record("remake", status, detail)
	}
	if r.cfg.Artifacts.MindMap {
		status, detail := r.mindMap(ctx, text, base)
		record("mindmap", status, detail)
	}

	return report
}

func (r *Runner) mcqs(ctx context.Context, text, base string, tmplCtx map[string]string, log *slog.Logger) (Status, string) {
	res, err := r.pipeline.MCQs(ctx, text)
	if err != nil {
		return StatusFailed, err.Error()
	}

	csvPath := filepath.Join(r.cfg.OutputDir, base+"_mcqs.csv")
	if err := WriteCSV(csvPath, res.Records); err != nil {
		return StatusFailed, err.Error()
	}
	log.Info("saved question set", "questions", len(res.Records), "output", filepath.Base(csvPath))

	docBytes, err := assemble.Assemble(render.MCQTable(res.Records), r.cfg.TemplatePath("mcq"), tmplCtx, assemble.Options{
		Font:         outputFont,
		BoldCellLead: true,
	})
	if err != nil {
		return StatusFailed, err.Error()
	}
	docxPath := filepath.Join(r.cfg.OutputDir, base+"_mcqs.docx")
	if err := os.WriteFile(docxPath, docBytes, 0o644); err != nil {
		return StatusFailed, err.Error()
	}

	switch {
	case !res.Verified:
		return StatusPartial, "verification output unusable, kept unverified candidate"
	case res.Rejected > 0:
		return StatusPartial, fmt.Sprintf("%d rows rejected", res.Rejected)
	default:
		return StatusCompleted, ""
	}
}

func (r *Runner) sections(ctx context.Context, text, base string, tmplCtx map[string]string, kind string) (Status, string) {
	var (
		res *generate.SectionResult
		err error
	)
	if kind == "summary" {
		res, err = r.pipeline.Summary(ctx, text)
	} else {
		res, err = r.pipeline.Remake(ctx, text)
	}
	if err != nil {
		return StatusFailed, err.Error()
	}

	var markdown string
	if kind == "summary" {
		markdown = render.Summary(res.Sections)
	} else {
		markdown = render.Remake(res.Sections)
	}

	docBytes, err := assemble.Assemble(markdown, r.cfg.TemplatePath(kind), tmplCtx, assemble.Options{
		Font:          outputFont,
		BoldKeyColumn: true,
	})
	if err != nil {
		return StatusFailed, err.Error()
	}
	outPath := filepath.Join(r.cfg.OutputDir, base+"_"+kind+".docx")
	if err := os.WriteFile(outPath, docBytes, 0o644); err != nil {
		return StatusFailed, err.Error()
	}

	switch {
	case !res.Verified:
		return StatusPartial, "verification output unusable, kept unverified candidate"
	case res.Degraded > 0:
		return StatusPartial, fmt.Sprintf("%d degraded sections", res.Degraded)
	default:
		return StatusCompleted, ""
	}
}

func (r *Runner) mindMap(ctx context.Context, text, base string) (Status, string) {
	res, err := r.pipeline.MindMap(ctx, text)
	if err != nil {
		return StatusFailed, err.Error()
	}

	data, err := mindmap.Build(res.Root, base)
	if err != nil {
		return StatusFailed, err.Error()
	}
	outPath := filepath.Join(r.cfg.OutputDir, base+"_mindmap.xmind")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return StatusFailed, err.Error()
	}

	if res.Degraded > 0 {
		return StatusPartial, fmt.Sprintf("%d degraded nodes", res.Degraded)
	}
	return StatusCompleted, ""
}
