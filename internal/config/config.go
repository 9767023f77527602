package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultEnvFile is read from the working directory unless another file is given.
const DefaultEnvFile = ".env"

// Config holds the settings of a docwriter session.
//
// Sources (in order of precedence):
//  1. CLI flags
//  2. Environment variables
//  3. The .env file
//  4. Default values
type Config struct {
	// MkdocsConfigPath locates the mkdocs.yml whose nav is maintained
	MkdocsConfigPath string `mapstructure:"mkdocs_config_path" validate:"required,file"`

	// DocRootPath is the directory holding the documents, empty means docs_dir of the mkdocs.yml
	DocRootPath string `mapstructure:"mkdocs_doc_root_path" validate:"omitempty,dir"`

	// DefaultSectionText is the body of generated index documents
	DefaultSectionText string `mapstructure:"default_text_for_new_sections"`

	// IndexName is the file name of a section's landing document
	IndexName string `mapstructure:"docwriter_index_name" validate:"required,excludesall=/\\"`

	// DocumentSuffix identifies leaves which point to documents
	DocumentSuffix string `mapstructure:"docwriter_document_suffix" validate:"required,startswith=."`

	// BackupDir receives copies of mkdocs.yml before each save, relative paths start next to mkdocs.yml
	BackupDir string `mapstructure:"docwriter_backup_dir"`

	// BackupCount limits the retained copies, 0 keeps all
	BackupCount int `mapstructure:"docwriter_backup_count" validate:"gte=0"`
}

// envKeys double as environment variable names, e.g. MKDOCS_CONFIG_PATH
var envKeys = []string{
	"mkdocs_config_path",
	"mkdocs_doc_root_path",
	"default_text_for_new_sections",
	"docwriter_index_name",
	"docwriter_document_suffix",
	"docwriter_backup_dir",
	"docwriter_backup_count",
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"mkdocs-config": "mkdocs_config_path",
	"doc-root":      "mkdocs_doc_root_path",
	"stub-text":     "default_text_for_new_sections",
	"index-name":    "docwriter_index_name",
	"backup-dir":    "docwriter_backup_dir",
	"backup-count":  "docwriter_backup_count",
}

// RegisterFlags adds the overriding flags to a flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("mkdocs-config", "", "path of mkdocs.yml (overrides MKDOCS_CONFIG_PATH)")
	flags.String("doc-root", "", "documentation root directory (overrides MKDOCS_DOC_ROOT_PATH)")
	flags.String("stub-text", "", "body of generated index documents (overrides DEFAULT_TEXT_FOR_NEW_SECTIONS)")
	flags.String("index-name", "", "file name of section index documents")
	flags.String("backup-dir", "", "directory for mkdocs.yml backups")
	flags.Int("backup-count", 0, "number of mkdocs.yml backups to keep")
}

// Load reads the configuration from envFile (missing is fine), the environment, and flags (may be nil).
func Load(envFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if err := setupViper(v, flags); err != nil {
		return nil, err
	}

	if err := readEnvFile(v, envFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setupViper(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding environment variable failed: %w", err)
		}
	}
	v.AutomaticEnv()
	v.SetDefault("docwriter_backup_count", DefaultBackupCount)

	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("binding flag --%s failed: %w", name, err)
			}
		}
	}
	return nil
}

func readEnvFile(v *viper.Viper, envFile string) error {
	if envFile == "" {
		return nil
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	return nil
}

// ResolveBackupDir returns the absolute backup directory, relative settings are taken from the mkdocs.yml location.
func (cfg *Config) ResolveBackupDir() string {
	base := filepath.Dir(cfg.MkdocsConfigPath)
	if cfg.BackupDir == "" {
		return base
	}
	if filepath.IsAbs(cfg.BackupDir) {
		return cfg.BackupDir
	}
	return filepath.Join(base, cfg.BackupDir)
}

// ResolveDocRoot returns the configured documentation root or docsDir (as declared in mkdocs.yml) next to it.
func (cfg *Config) ResolveDocRoot(docsDir string) string {
	if cfg.DocRootPath != "" {
		return cfg.DocRootPath
	}
	if docsDir == "" {
		docsDir = DefaultDocsDir
	}
	if filepath.IsAbs(docsDir) {
		return docsDir
	}
	return filepath.Join(filepath.Dir(cfg.MkdocsConfigPath), docsDir)
}
