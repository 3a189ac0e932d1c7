package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dberrada/studyforge/internal/batch"
	"github.com/dberrada/studyforge/internal/extract"
	"github.com/dberrada/studyforge/internal/generate"
	"github.com/dberrada/studyforge/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate study artifacts for every lecture file",
	Long: `Process every Markdown file in the lecture directory and write the enabled
artifacts to the output directory. When extraction is enabled, PDFs from the
input directory are converted to Markdown first.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("extract", true, "run the PDF extraction step first")
	generateCmd.Flags().Bool("mcq", true, "generate question sets")
	generateCmd.Flags().Bool("summary", true, "generate summaries")
	generateCmd.Flags().Bool("remake", true, "generate high-fidelity rewrites")
	generateCmd.Flags().Bool("mindmap", true, "generate mind maps")

	_ = viper.BindPFlag("run_extraction", generateCmd.Flags().Lookup("extract"))
	_ = viper.BindPFlag("artifacts.mcq", generateCmd.Flags().Lookup("mcq"))
	_ = viper.BindPFlag("artifacts.summary", generateCmd.Flags().Lookup("summary"))
	_ = viper.BindPFlag("artifacts.remake", generateCmd.Flags().Lookup("remake"))
	_ = viper.BindPFlag("artifacts.mindmap", generateCmd.Flags().Lookup("mindmap"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := newLogger()

	client, err := llm.NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.RequestsPerSecond)
	if err != nil {
		return err
	}
	retrier := &llm.Retrier{
		Client: client,
		Policy: llm.Policy{
			MaxAttempts: cfg.MaxAttempts,
			BaseDelay:   time.Second,
			MaxDelay:    30 * time.Second,
		},
		Log: log,
	}

	rules, err := generate.LoadRules(cfg.RulesPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Warn("rules file not found, prompts carry no extra rules", "path", cfg.RulesPath)
	}

	pipeline := generate.New(retrier, rules, generate.Params{
		TokenLimit:      cfg.TokenLimit,
		WordsPerItem:    cfg.WordsPerQuestion,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Temperature:     cfg.Temperature,
	}, log)
	extractor := &extract.Extractor{FallbackPdftotext: cfg.FallbackPdftotext, Log: log}
	runner := batch.NewRunner(pipeline, extractor, cfg, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return fmt.Errorf("no lecture files found in %s", cfg.LectureDir)
	}

	allFailed := true
	for _, rep := range reports {
		if !rep.Failed() {
			allFailed = false
			break
		}
	}
	if allFailed {
		return fmt.Errorf("every lecture file failed, see log for details")
	}
	return nil
}
