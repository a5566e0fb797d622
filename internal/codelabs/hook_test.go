package codelabs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/codelabcopy/internal/errors"
	"git.home.luguber.info/inful/codelabcopy/internal/hook"
)

func TestHook_RunsThroughRegistry(t *testing.T) {
	r := newRoots(t)
	writeTree(t, r.docs, map[string]string{
		"codelabs/android/intro/index.html": "intro",
		"codelabs/web/basics/index.html":    "basics",
	})

	h := NewHook(NewCopier(nil))
	registry := hook.NewRegistry()
	require.NoError(t, registry.Register(h))
	require.True(t, registry.Has(HookName))

	err := registry.RunPostBuild(context.Background(), hook.NewSiteConfig(r.docs, r.site, "build-1", nil))
	require.NoError(t, err)
	require.Equal(t, 2, h.Copied())

	got, err := os.ReadFile(filepath.Join(r.site, DirName, "web", "basics", "index.html"))
	require.NoError(t, err)
	require.Equal(t, "basics", string(got))
}

func TestHook_FailureIsFatal(t *testing.T) {
	r := newRoots(t)
	writeTree(t, r.docs, map[string]string{"codelabs/android/intro/index.html": "intro"})
	writeTree(t, r.site, map[string]string{"codelabs/android": "blocker"})

	registry := hook.NewRegistry()
	require.NoError(t, registry.Register(NewHook(NewCopier(nil))))

	err := registry.RunPostBuild(context.Background(), hook.NewSiteConfig(r.docs, r.site, "b", nil))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryHook))
}

func TestHook_CanceledBeforeStart(t *testing.T) {
	r := newRoots(t)
	writeTree(t, r.docs, map[string]string{"codelabs/android/intro/index.html": "intro"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHook(NewCopier(nil)).OnPostBuild(ctx, hook.NewSiteConfig(r.docs, r.site, "b", nil))
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(r.site)
	require.True(t, os.IsNotExist(statErr))
}
