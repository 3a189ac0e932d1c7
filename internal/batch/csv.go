package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dberrada/studyforge/internal/content"
)

var csvHeader = []string{"qid", "question", "a", "b", "c", "d", "e", "correct_answer"}

// WriteCSV saves a question set as a spreadsheet-friendly CSV, one row per
// question with the five options in their own columns.
func WriteCSV(path string, records []content.MCQRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{strconv.Itoa(rec.ID), rec.Question}
		row = append(row, rec.Options...)
		row = append(row, rec.Answer)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
