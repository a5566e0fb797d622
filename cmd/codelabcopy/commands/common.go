package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/codelabcopy/internal/codelabs"
	"git.home.luguber.info/inful/codelabcopy/internal/config"
	"git.home.luguber.info/inful/codelabcopy/internal/errors"
	"git.home.luguber.info/inful/codelabcopy/internal/hook"
	"git.home.luguber.info/inful/codelabcopy/internal/logfields"
	"git.home.luguber.info/inful/codelabcopy/internal/metrics"
)

// Global carries process-wide services into subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"MkDocs configuration file providing docs_dir and site_dir" default:"mkdocs.yml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogLevel  string           `name:"log-level" help:"Log level (debug|info|warn|error)" default:"info" env:"CODELABCOPY_LOG_LEVEL"`
	LogFormat string           `name:"log-format" help:"Log format (text|json)" default:"text" enum:"text,json"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run        RunCmd        `cmd:"" default:"withargs" help:"Copy codelab directories into the built site (default)"`
	Watch      WatchCmd      `cmd:"" help:"Copy once, then copy again whenever codelab sources change"`
	Categories CategoriesCmd `cmd:"" help:"List the codelab categories that are copied"`
}

// NewLogger builds the logger selected by the global flags. --verbose wins over --log-level.
func (c *CLI) NewLogger(w io.Writer) *slog.Logger {
	level := config.NormalizeLogLevel(c.LogLevel)
	if c.Verbose {
		level = config.LogLevelDebug
	}
	return config.NewLogger(w, level, config.NormalizeLogFormat(c.LogFormat))
}

// RootFlags are the per-command overrides for the two roots.
type RootFlags struct {
	DocsDir string `name:"docs-dir" help:"Documentation source root (overrides docs_dir)"`
	SiteDir string `name:"site-dir" help:"Built site root (overrides site_dir)"`
}

// ResolveConfig loads the config file and applies flag overrides. A missing
// config file is tolerated when both roots are given as flags.
func ResolveConfig(configPath string, flags RootFlags) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.IsCategory(err, errors.CategoryConfig) || flags.DocsDir == "" || flags.SiteDir == "" {
			return nil, err
		}
		cfg = &config.Config{}
	}
	cfg = cfg.WithOverrides(flags.DocsDir, flags.SiteDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pipeline wires the copy step into a post-build hook registry, optionally
// recording Prometheus metrics exported to a textfile after every pass.
type pipeline struct {
	logger      *slog.Logger
	registry    *hook.Registry
	codelabs    *codelabs.Hook
	gatherer    *prom.Registry
	metricsFile string
}

func newPipeline(logger *slog.Logger, metricsFile string) (*pipeline, error) {
	p := &pipeline{
		logger:      logger,
		registry:    hook.NewRegistry(),
		metricsFile: metricsFile,
	}

	copier := codelabs.NewCopier(logger)
	if metricsFile != "" {
		p.gatherer = prom.NewRegistry()
		copier = copier.WithRecorder(metrics.NewPrometheusRecorder(p.gatherer))
	}

	p.codelabs = codelabs.NewHook(copier)
	if err := p.registry.Register(p.codelabs); err != nil {
		return nil, errors.InternalError("register codelab hook", err)
	}
	return p, nil
}

// runOnce performs a single post-build pass and returns the number of codelabs copied.
func (p *pipeline) runOnce(ctx context.Context, cfg *config.Config) (int, error) {
	buildID := uuid.NewString()
	start := time.Now()
	site := hook.NewSiteConfig(cfg.DocsDir, cfg.SiteDir, buildID, p.logger)

	p.logger.Debug("Running post-build hooks",
		logfields.BuildID(buildID),
		logfields.Source(cfg.DocsDir),
		logfields.Destination(cfg.SiteDir))

	err := p.registry.RunPostBuild(ctx, site)

	if p.gatherer != nil {
		if werr := metrics.WriteTextfile(p.metricsFile, p.gatherer); werr != nil {
			p.logger.Warn("Failed to write metrics file", logfields.Path(p.metricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return p.codelabs.Copied(), err
	}

	p.logger.Debug("Post-build hooks finished",
		logfields.BuildID(buildID),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return p.codelabs.Copied(), nil
}
