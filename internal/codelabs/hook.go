package codelabs

import (
	"context"

	"git.home.luguber.info/inful/codelabcopy/internal/hook"
)

// HookName identifies the codelab copy step in a hook registry.
const HookName = "copy-codelabs"

// Hook runs a Copier as a post-build hook against the site's docs and output roots.
type Hook struct {
	copier *Copier
	copied int
}

// NewHook wraps copier as a post-build hook.
func NewHook(copier *Copier) *Hook {
	return &Hook{copier: copier}
}

func (h *Hook) Metadata() hook.Metadata {
	return hook.Metadata{
		Name:        HookName,
		Description: "Copy pre-rendered codelab directories into the built site",
	}
}

func (h *Hook) OnPostBuild(ctx context.Context, site *hook.SiteConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := h.copier.Run(site.DocsDir, site.SiteDir)
	h.copied = n
	return err
}

// Copied returns the count reported by the most recent OnPostBuild.
func (h *Hook) Copied() int {
	return h.copied
}
