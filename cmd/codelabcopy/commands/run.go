package commands

import (
	"context"
	"fmt"
)

// RunCmd implements the 'run' command: one copy pass.
type RunCmd struct {
	RootFlags
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile metrics to this path after the pass"`
}

func (r *RunCmd) Run(g *Global, root *CLI) error {
	cfg, err := ResolveConfig(root.Config, r.RootFlags)
	if err != nil {
		return err
	}

	p, err := newPipeline(g.Logger, r.MetricsFile)
	if err != nil {
		return err
	}

	n, err := p.runOnce(context.Background(), cfg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Copied %d codelab(s) into %s\n", n, cfg.SiteDir)
	return nil
}
