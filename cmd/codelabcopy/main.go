package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/codelabcopy/cmd/codelabcopy/commands"
	"git.home.luguber.info/inful/codelabcopy/internal/errors"
	"git.home.luguber.info/inful/codelabcopy/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("codelabcopy"),
		kong.Description("Post-build step that copies pre-rendered codelab directories into a built documentation site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	logger := cli.NewLogger(os.Stderr)
	err := ctx.Run(&commands.Global{Logger: logger, Out: os.Stdout}, &cli)
	errors.NewCLIErrorAdapter(cli.Verbose, logger).HandleError(err)
}
