// Package config holds the runtime configuration. Values come from a YAML
// config file, STUDYFORGE_* environment variables, and command-line flags,
// merged by the CLI layer; this package only defines the shape, the defaults,
// and validation.
package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	// Generation service.
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Model   string `mapstructure:"model" yaml:"model"`

	// Directories.
	InputDir    string `mapstructure:"input_dir" yaml:"input_dir"`
	LectureDir  string `mapstructure:"lecture_dir" yaml:"lecture_dir"`
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir"`
	TemplateDir string `mapstructure:"template_dir" yaml:"template_dir"`
	RulesPath   string `mapstructure:"rules_path" yaml:"rules_path"`

	Artifacts Artifacts `mapstructure:"artifacts" yaml:"artifacts"`

	// Generation tuning.
	TokenLimit        int     `mapstructure:"token_limit" yaml:"token_limit"`
	WordsPerQuestion  int     `mapstructure:"words_per_question" yaml:"words_per_question"`
	MaxOutputTokens   int     `mapstructure:"max_output_tokens" yaml:"max_output_tokens"`
	Temperature       float32 `mapstructure:"temperature" yaml:"temperature"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	MaxAttempts       int     `mapstructure:"max_attempts" yaml:"max_attempts"`

	// PDF extraction front step.
	RunExtraction     bool `mapstructure:"run_extraction" yaml:"run_extraction"`
	FallbackPdftotext bool `mapstructure:"fallback_pdftotext" yaml:"fallback_pdftotext"`
}

// Artifacts toggles the individual generation steps.
type Artifacts struct {
	MCQ     bool `mapstructure:"mcq" yaml:"mcq"`
	Summary bool `mapstructure:"summary" yaml:"summary"`
	Remake  bool `mapstructure:"remake" yaml:"remake"`
	MindMap bool `mapstructure:"mindmap" yaml:"mindmap"`
}

func Default() Config {
	return Config{
		Model: "gpt-4o-mini",

		InputDir:    "input",
		LectureDir:  "extracted_text",
		OutputDir:   "output",
		TemplateDir: "templates",
		RulesPath:   "rules.txt",

		Artifacts: Artifacts{MCQ: true, Summary: true, Remake: true, MindMap: true},

		TokenLimit:        3000,
		WordsPerQuestion:  100,
		MaxOutputTokens:   8192,
		Temperature:       0.8,
		RequestsPerSecond: 1,
		MaxAttempts:       5,

		RunExtraction:     true,
		FallbackPdftotext: true,
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (STUDYFORGE_API_KEY)")
	}
	if c.TokenLimit <= 0 {
		return fmt.Errorf("token_limit must be positive")
	}
	if c.WordsPerQuestion <= 0 {
		return fmt.Errorf("words_per_question must be positive")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive")
	}
	if !c.Artifacts.MCQ && !c.Artifacts.Summary && !c.Artifacts.Remake && !c.Artifacts.MindMap {
		return fmt.Errorf("all artifacts are disabled")
	}
	return nil
}

// TemplatePath returns the cover template for an artifact kind
// ("mcq", "summary", "remake").
func (c Config) TemplatePath(kind string) string {
	return filepath.Join(c.TemplateDir, kind+"_template.docx")
}
