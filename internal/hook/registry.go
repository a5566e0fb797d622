package hook

import (
	"context"
	"fmt"
	"sync"
	"time"

	"git.home.luguber.info/inful/codelabcopy/internal/errors"
	"git.home.luguber.info/inful/codelabcopy/internal/logfields"
)

// Registry holds post-build hooks in registration order.
type Registry struct {
	mu    sync.RWMutex
	hooks []PostBuildHook
	names map[string]struct{}
}

// NewRegistry creates a new empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register appends a hook to the registry.
// Returns an error if a hook with the same name already exists.
func (r *Registry) Register(h PostBuildHook) error {
	if h == nil {
		return fmt.Errorf("cannot register nil hook")
	}

	metadata := h.Metadata()
	if err := metadata.Validate(); err != nil {
		return fmt.Errorf("invalid hook metadata: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[metadata.Name]; exists {
		return fmt.Errorf("hook %s already registered", metadata.Name)
	}

	r.names[metadata.Name] = struct{}{}
	r.hooks = append(r.hooks, h)
	return nil
}

// Has checks if a hook with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.names[name]
	return ok
}

// List returns the registered hooks in registration order.
func (r *Registry) List() []PostBuildHook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]PostBuildHook, len(r.hooks))
	copy(result, r.hooks)
	return result
}

// RunPostBuild runs every hook in registration order. The first failure stops
// the run and is returned wrapped with the hook name.
func (r *Registry) RunPostBuild(ctx context.Context, site *SiteConfig) error {
	if site == nil {
		return errors.InternalError("post-build hooks need a site config", nil)
	}
	logger := site.log().With(logfields.BuildID(site.BuildID))

	for _, h := range r.List() {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := h.Metadata().Name
		start := time.Now()
		logger.Debug("Running post-build hook", logfields.Hook(name))

		if err := h.OnPostBuild(ctx, site); err != nil {
			logger.Error("Post-build hook failed", logfields.Hook(name), logfields.Error(err))
			return errors.HookFailed(name, err)
		}

		logger.Debug("Post-build hook finished",
			logfields.Hook(name),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	}
	return nil
}
