// Package hook defines the post-build hook contract: callbacks the site build
// runs once all pages are generated, used to add output the generator itself
// does not know how to produce.
package hook

import (
	"context"
	"fmt"
	"log/slog"
)

// PostBuildHook is run after the documentation site has been generated.
type PostBuildHook interface {
	// Metadata returns the hook's identity.
	Metadata() Metadata

	// OnPostBuild runs the hook against the finished build. A returned error
	// is fatal for the build.
	OnPostBuild(ctx context.Context, site *SiteConfig) error
}

// Metadata describes a hook.
type Metadata struct {
	// Name is the unique hook identifier (e.g., "copy-codelabs").
	Name string

	// Description provides a human-readable summary of the hook's purpose.
	Description string
}

// String returns the hook name.
func (m Metadata) String() string {
	return m.Name
}

// Validate checks if the hook metadata is valid.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("hook name is required")
	}
	return nil
}

// SiteConfig is the configuration handed to post-build hooks.
type SiteConfig struct {
	// DocsDir is the documentation source root.
	DocsDir string

	// SiteDir is the built output root.
	SiteDir string

	// BuildID uniquely identifies this build.
	BuildID string

	// Logger provides structured logging for hook operations.
	Logger *slog.Logger
}

// NewSiteConfig creates a site config. A nil logger discards output.
func NewSiteConfig(docsDir, siteDir, buildID string, logger *slog.Logger) *SiteConfig {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SiteConfig{
		DocsDir: docsDir,
		SiteDir: siteDir,
		BuildID: buildID,
		Logger:  logger,
	}
}

func (s *SiteConfig) log() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
