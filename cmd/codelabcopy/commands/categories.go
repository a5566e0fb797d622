package commands

import (
	"fmt"

	"git.home.luguber.info/inful/codelabcopy/internal/codelabs"
)

// CategoriesCmd implements the 'categories' command.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(g *Global) error {
	for _, category := range codelabs.Categories {
		if _, err := fmt.Fprintln(g.Out, category); err != nil {
			return err
		}
	}
	return nil
}
