package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/codelabcopy/internal/codelabs"
	"git.home.luguber.info/inful/codelabcopy/internal/fsutil"
	"git.home.luguber.info/inful/codelabcopy/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RootFlags
	MetricsFile string        `name:"metrics-file" help:"Write Prometheus textfile metrics to this path after every pass"`
	Debounce    time.Duration `name:"debounce" help:"Quiet period before a change triggers a copy" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := ResolveConfig(root.Config, w.RootFlags)
	if err != nil {
		return err
	}

	p, err := newPipeline(g.Logger, w.MetricsFile)
	if err != nil {
		return err
	}

	n, err := p.runOnce(ctx, cfg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Copied %d codelab(s) into %s; watching for changes\n", n, cfg.SiteDir)

	// Prefer the codelabs tree; fall back to the docs root so a codelabs
	// directory created later is still noticed.
	watchRoot := filepath.Join(cfg.DocsDir, codelabs.DirName)
	if ok, err := fsutil.IsDir(watchRoot); err != nil || !ok {
		watchRoot = cfg.DocsDir
	}

	watcher := &watch.Watcher{
		Root:     watchRoot,
		Debounce: w.Debounce,
		Logger:   g.Logger,
		Step: func(ctx context.Context) error {
			_, err := p.runOnce(ctx, cfg)
			return err
		},
	}
	return watcher.Run(ctx)
}
