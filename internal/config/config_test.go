package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	missing := Default()
	assert.Error(t, missing.Validate())

	off := Default()
	off.APIKey = "sk-test"
	off.Artifacts = Artifacts{}
	assert.Error(t, off.Validate())
}

func TestTemplatePath(t *testing.T) {
	cfg := Default()
	cfg.TemplateDir = "tpl"
	assert.Equal(t, filepath.Join("tpl", "mcq_template.docx"), cfg.TemplatePath("mcq"))
}
