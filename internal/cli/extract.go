package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dberrada/studyforge/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract lecture PDFs to Markdown",
	Long: `Convert every PDF in the input directory to a Markdown file in the lecture
directory. Files that were already extracted are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()

		extractor := &extract.Extractor{FallbackPdftotext: cfg.FallbackPdftotext, Log: log}
		n, err := extractor.Dir(cfg.InputDir, cfg.LectureDir)
		if err != nil {
			return err
		}
		fmt.Printf("extracted %d file(s) into %s\n", n, cfg.LectureDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
