package config

import (
	"path/filepath"
	"strings"
)

const (
	DefaultIndexName      = "index.md"
	DefaultDocumentSuffix = ".md"
	DefaultBackupCount    = 5
	DefaultDocsDir        = "docs"
)

// ApplyDefaults fills unset fields and normalizes paths.
// The backup count is defaulted while loading because 0 is a valid setting.
func ApplyDefaults(cfg *Config) {
	if cfg.IndexName == "" {
		cfg.IndexName = DefaultIndexName
	}
	if cfg.DocumentSuffix == "" {
		cfg.DocumentSuffix = DefaultDocumentSuffix
	}
	if !strings.HasPrefix(cfg.DocumentSuffix, ".") {
		cfg.DocumentSuffix = "." + cfg.DocumentSuffix
	}

	cfg.MkdocsConfigPath = absolute(cfg.MkdocsConfigPath)
	cfg.DocRootPath = absolute(cfg.DocRootPath)
}

func absolute(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
