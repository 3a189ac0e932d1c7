package parse

import (
	"log/slog"
	"strings"

	"github.com/dberrada/studyforge/internal/content"
)

// mcqFields is question, five options, correct answer.
const mcqFields = 7

// MCQRows parses pipe-delimited question rows into records. A row is rejected
// (logged and skipped, never silently accepted) when it does not have exactly
// seven fields, when any field is blank, when options are not mutually
// distinguishable, or when the marked correct answer is not one of the
// options verbatim. Returns the accepted records and the rejected row count.
func MCQRows(raw string, log *slog.Logger) ([]content.MCQRecord, int) {
	var records []content.MCQRecord
	rejected := 0

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}
		fields := splitRow(line)
		if isHeaderRow(fields) || isSeparatorRow(fields) {
			continue
		}

		if len(fields) != mcqFields {
			rejected++
			log.Warn("rejecting question row: wrong field count", "fields", len(fields), "row", truncate(line, 120))
			continue
		}

		question := fields[0]
		options := fields[1:6]
		answer := fields[6]

		if question == "" || answer == "" || hasBlank(options) {
			rejected++
			log.Warn("rejecting question row: blank field", "row", truncate(line, 120))
			continue
		}
		if hasDuplicate(options) {
			rejected++
			log.Warn("rejecting question row: duplicate options", "row", truncate(line, 120))
			continue
		}
		if !containsExact(options, answer) {
			rejected++
			log.Warn("rejecting question row: correct answer not among options", "answer", truncate(answer, 60))
			continue
		}

		records = append(records, content.MCQRecord{
			ID:       len(records) + 1,
			Question: question,
			Options:  append([]string(nil), options...),
			Answer:   answer,
		})
	}

	return records, rejected
}

// splitRow splits a Markdown-style table row on unescaped pipes and trims
// each field. Escaped pipes (`\|`) survive as literal pipes.
const pipeSentinel = "\x00"

func splitRow(line string) []string {
	line = strings.Trim(line, "|")
	line = strings.ReplaceAll(line, `\|`, pipeSentinel)
	parts := strings.Split(line, "|")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(strings.ReplaceAll(p, pipeSentinel, "|"))
	}
	return fields
}

func isHeaderRow(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(fields[0], "question")
}

func isSeparatorRow(fields []string) bool {
	for _, f := range fields {
		if strings.Trim(f, "-: ") != "" {
			return false
		}
	}
	return true
}

func hasBlank(options []string) bool {
	for _, o := range options {
		if o == "" {
			return true
		}
	}
	return false
}

func hasDuplicate(options []string) bool {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		key := strings.ToLower(o)
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}

func containsExact(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
