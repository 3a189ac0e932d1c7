package assemble

import "fmt"

// TemplateError indicates a required placeholder is missing from the
// pre-authored template. Deterministic: retrying will not help.
type TemplateError struct {
	Path        string
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: placeholder {{%s}} not found", e.Path, e.Placeholder)
}

// ConversionError indicates the Markdown-to-document step failed.
// Deterministic: propagated, never retried.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("markdown conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
