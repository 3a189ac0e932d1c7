// Package generate drives the two-pass generate-then-verify protocol: chunk
// the source text, generate per chunk, aggregate, then have the model verify
// and correct the aggregate against the full source and the rules. The
// verified output is authoritative; if it cannot be parsed, the
// pre-verification candidate is kept and the artifact is marked unverified.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dberrada/studyforge/internal/chunker"
	"github.com/dberrada/studyforge/internal/content"
	"github.com/dberrada/studyforge/internal/llm"
	"github.com/dberrada/studyforge/internal/parse"
)

// Params bound one pipeline run.
type Params struct {
	TokenLimit      int
	WordsPerItem    int
	MaxOutputTokens int
	Temperature     float32
}

// Pipeline orchestrates generation for one source text at a time. It holds no
// per-run state and is safe to reuse across files.
type Pipeline struct {
	llm    *llm.Retrier
	rules  string
	params Params
	log    *slog.Logger
}

func New(r *llm.Retrier, rules string, params Params, log *slog.Logger) *Pipeline {
	return &Pipeline{llm: r, rules: rules, params: params, log: log}
}

// MCQResult is a parsed question set plus run accounting.
type MCQResult struct {
	Records  []content.MCQRecord
	Verified bool
	Rejected int
	Chunks   int
	Retries  int
}

// SectionResult is a parsed section list plus run accounting. Degraded counts
// units that failed schema validation and were kept as placeholders.
type SectionResult struct {
	Sections []content.Section
	Verified bool
	Degraded int
	Chunks   int
	Retries  int
}

// MindMapResult is a parsed topic tree plus run accounting.
type MindMapResult struct {
	Root     *content.MindMapNode
	Degraded int
	Retries  int
}

// MCQs runs the full protocol for a question set. Chunk generations run
// sequentially in chunk order; a generation failure after retries aborts the
// artifact. Rows rejected by the parser are logged and skipped.
func (p *Pipeline) MCQs(ctx context.Context, text string) (*MCQResult, error) {
	chunks := chunker.Split(text, p.params.TokenLimit, p.params.WordsPerItem)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("source text is empty")
	}

	res := &MCQResult{Chunks: len(chunks)}
	var rawParts []string
	for _, chunk := range chunks {
		out, retries, err := p.generate(ctx, mcqGeneratorSystem, mcqGeneratePrompt(p.rules, chunk.Text, chunk.Items), false)
		res.Retries += retries
		if err != nil {
			return nil, fmt.Errorf("generate questions for chunk %d: %w", chunk.Index, err)
		}
		rawParts = append(rawParts, out)
	}
	candidate := strings.Join(rawParts, "\n")

	verifiedRaw, retries, err := p.generate(ctx, mcqVerifierSystem, mcqVerifyPrompt(p.rules, candidate, text), false)
	res.Retries += retries
	if err != nil {
		return nil, fmt.Errorf("verify questions: %w", err)
	}

	records, rejected := parse.MCQRows(verifiedRaw, p.log)
	res.Verified = true
	if len(records) == 0 {
		// Verify output unusable: keep the candidate, flag the set.
		p.log.Warn("verification output yielded no questions, keeping unverified candidate")
		records, rejected = parse.MCQRows(candidate, p.log)
		res.Verified = false
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid questions parsed from %d chunks", len(chunks))
	}

	res.Records = records
	res.Rejected = rejected
	return res, nil
}

// Summary runs the protocol for a summary artifact.
func (p *Pipeline) Summary(ctx context.Context, text string) (*SectionResult, error) {
	return p.sections(ctx, text, summaryGeneratePrompt)
}

// Remake runs the protocol for a high-fidelity rewrite.
func (p *Pipeline) Remake(ctx context.Context, text string) (*SectionResult, error) {
	return p.sections(ctx, text, remakeGeneratePrompt)
}

func (p *Pipeline) sections(ctx context.Context, text string, prompt func(rules, chunk string, count int) string) (*SectionResult, error) {
	chunks := chunker.Split(text, p.params.TokenLimit, p.params.WordsPerItem)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("source text is empty")
	}

	res := &SectionResult{Chunks: len(chunks)}
	var candidate []content.Section
	candidateDegraded := 0
	for _, chunk := range chunks {
		out, retries, err := p.generate(ctx, sectionGeneratorSystem, prompt(p.rules, chunk.Text, chunk.Items), false)
		res.Retries += retries
		if err != nil {
			return nil, fmt.Errorf("generate sections for chunk %d: %w", chunk.Index, err)
		}

		secs, degraded, err := parse.Sections(out)
		if err != nil {
			// Whole-chunk payload unusable: degrade it to one placeholder
			// section and keep going.
			p.log.Warn("chunk output is not a section list, degrading", "chunk", chunk.Index, "error", err)
			secs = []content.Section{{
				Heading: fmt.Sprintf("Passage %d", chunk.Index+1),
				Items:   []content.Item{{Kind: content.ItemUnparsed, Text: "content for this passage could not be parsed"}},
			}}
			degraded = 1
		}
		candidate = append(candidate, secs...)
		candidateDegraded += degraded
	}

	encoded, err := parse.EncodeSections(candidate)
	if err != nil {
		return nil, fmt.Errorf("encode candidate sections: %w", err)
	}

	verifiedRaw, retries, err := p.generate(ctx, sectionVerifierSystem, sectionVerifyPrompt(p.rules, encoded, text), false)
	res.Retries += retries
	if err != nil {
		return nil, fmt.Errorf("verify sections: %w", err)
	}

	sections, degraded, err := parse.Sections(verifiedRaw)
	if err != nil || len(sections) == 0 {
		// Unparsable or empty verify output: keep the candidate, flag the
		// artifact.
		p.log.Warn("verification output unusable, keeping unverified candidate", "error", err)
		res.Sections = candidate
		res.Degraded = candidateDegraded
		res.Verified = false
		return res, nil
	}

	res.Sections = sections
	res.Degraded = degraded
	res.Verified = true
	return res, nil
}

// MindMap runs a single generation call over the full text. Mind maps skip
// the verify pass: the tree is small and schema problems degrade to
// placeholder nodes at parse time.
func (p *Pipeline) MindMap(ctx context.Context, text string) (*MindMapResult, error) {
	out, retries, err := p.generate(ctx, mindMapSystem, mindMapPrompt(p.rules, text), true)
	if err != nil {
		return nil, fmt.Errorf("generate mind map: %w", err)
	}

	root, degraded, err := parse.MindMap(out)
	if err != nil {
		return nil, fmt.Errorf("parse mind map: %w", err)
	}

	return &MindMapResult{Root: root, Degraded: degraded, Retries: retries}, nil
}

func (p *Pipeline) generate(ctx context.Context, system, prompt string, jsonMode bool) (string, int, error) {
	return p.llm.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		JSON:        jsonMode,
		MaxTokens:   p.params.MaxOutputTokens,
		Temperature: p.params.Temperature,
	})
}
