package config

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/codelabcopy/internal/errors"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "mkdocs.yml"

const (
	defaultDocsDir = "docs"
	defaultSiteDir = "site"
)

// Config holds the two roots the post-build step works between. It is read
// from a MkDocs-style site config; every other key in that file is ignored.
type Config struct {
	// Path is the config file the values were read from, empty for Default.
	Path    string
	DocsDir string
	SiteDir string
}

// siteFile mirrors the keys we read. EnvString lets both accept !ENV tags.
type siteFile struct {
	DocsDir EnvString `yaml:"docs_dir"`
	SiteDir EnvString `yaml:"site_dir"`
}

// Load loads configuration from the specified file. Relative docs_dir and
// site_dir resolve against the directory holding the file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just note it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(configPath)
		}
		return nil, errors.ConfigInvalid(configPath, err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var raw siteFile
	if err := yaml.NewDecoder(bytes.NewBufferString(expanded)).Decode(&raw); err != nil && !stdErrors.Is(err, io.EOF) {
		return nil, errors.ConfigInvalid(configPath, err)
	}

	cfg := &Config{
		Path:    configPath,
		DocsDir: string(raw.DocsDir),
		SiteDir: string(raw.SiteDir),
	}
	cfg.applyDefaults()
	cfg.resolve(filepath.Dir(configPath))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config rooted at baseDir with the default docs/site layout.
func Default(baseDir string) *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.resolve(baseDir)
	return cfg
}

// WithOverrides returns a copy with non-empty flag values replacing the loaded roots.
// Overrides are used as given, relative to the working directory.
func (c *Config) WithOverrides(docsDir, siteDir string) *Config {
	out := *c
	if docsDir != "" {
		out.DocsDir = filepath.Clean(docsDir)
	}
	if siteDir != "" {
		out.SiteDir = filepath.Clean(siteDir)
	}
	return &out
}

// Validate checks that both roots are set and distinct.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return errors.ValidationFailed("docs_dir", "must not be empty")
	}
	if c.SiteDir == "" {
		return errors.ValidationFailed("site_dir", "must not be empty")
	}
	if filepath.Clean(c.DocsDir) == filepath.Clean(c.SiteDir) {
		return errors.ValidationFailed("site_dir", "must differ from docs_dir")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.DocsDir == "" {
		c.DocsDir = defaultDocsDir
	}
	if c.SiteDir == "" {
		c.SiteDir = defaultSiteDir
	}
}

func (c *Config) resolve(baseDir string) {
	c.DocsDir = resolvePath(baseDir, c.DocsDir)
	c.SiteDir = resolvePath(baseDir, c.SiteDir)
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) || baseDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
