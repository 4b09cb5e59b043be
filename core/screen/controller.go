// ABOUTME: Screen controller drives the mount/unmount lifecycle of one design screen
// ABOUTME: Owns the trusted markup, the fallback switch, and the resources each mount must release

package screen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"designmount/core/acquire"
	"designmount/core/domain"
	cerrors "designmount/core/errors"
	"designmount/core/interfaces"
	"designmount/core/resources"
	"designmount/core/rewrite"
)

// DefaultContainerID is the host document element a screen renders into
// unless configured otherwise.
const DefaultContainerID = "design-root"

// Controller integrates one design document into the hosting shell. It runs
// the Loading -> Ready/Failed state machine per mount, holds the trusted
// markup while mounted, and releases every resource the mount created on
// unmount.
//
// The generation counter is the mount-liveness check: every Mount and
// Unmount bumps it, and work resumed after the acquisition wait commits
// nothing unless its generation is still the live one. An unmount racing a
// pending acquisition therefore always wins.
type Controller struct {
	deps   interfaces.Dependencies
	source domain.Source

	acquirer *acquire.Service
	rewriter *rewrite.Rewriter
	infoSvc  interfaces.DocumentInfoService

	hostdoc     interfaces.HostDocument
	containerID string
	cfg         rewrite.Config
	cacheTTL    time.Duration

	mu         sync.Mutex
	generation uint64
	state      domain.ScreenState
	markup     domain.TrustedMarkup
	failed     bool
	info       *domain.DocumentInfo
	loader     *resources.Loader
}

// NewController creates a controller for the given source. Options attach
// the host document and adjust the asset namespace; zero config falls back
// to the stock export layout under /assets/.
func NewController(deps interfaces.Dependencies, source domain.Source, opts ...Option) *Controller {
	c := &Controller{
		deps:        deps,
		source:      source,
		containerID: DefaultContainerID,
		state:       domain.ScreenLoading,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rewriter = rewrite.NewRewriter(c.cfg)
	c.cfg = c.rewriter.Config()

	c.acquirer = acquire.NewService(deps)
	c.acquirer.SetCacheTTL(c.cacheTTL)

	return c
}

// Mount runs the screen lifecycle: ensure companion stylesheets, acquire the
// document, rewrite it, commit it into the host container, then ensure
// companion scripts. It never returns an error; every failure resolves to a
// renderable state, with fallback content and the failed flag set for
// anything user-facing. The returned state is the controller's state after
// the mount settled.
func (c *Controller) Mount(ctx context.Context) (state domain.ScreenState) {
	gen, loader := c.beginMount()

	defer func() {
		if r := recover(); r != nil {
			c.failMount(gen, &cerrors.InjectionError{Op: "mount", Message: fmt.Sprint(r)})
			state = c.State()
		}
	}()

	// Stylesheets go in before any markup commit so visual rules apply the
	// moment content appears.
	if err := c.ensureStylesheets(loader); err != nil {
		c.failMount(gen, err)
		return c.State()
	}

	// The only suspension point. Everything after it runs under the
	// liveness check: the screen may have been unmounted meanwhile.
	raw, err := c.acquirer.Acquire(ctx, c.source)
	if err != nil {
		if cerrors.IsEnvironmentUnavailable(err) {
			// No network capability is not user-facing. Skip silently;
			// embedded sources exist for environments like this.
			c.logDebug("Acquisition skipped", map[string]interface{}{
				"source": c.source.URL,
				"reason": err.Error(),
			})
			return c.State()
		}
		c.failMount(gen, err)
		return c.State()
	}

	c.commitMount(ctx, gen, loader, raw)
	return c.State()
}

// Unmount tears the screen down from any state: it invalidates pending
// acquisitions, removes every mount-owned resource element, clears the host
// container, and resets the machine so a remount starts from Loading.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Invalidate any in-flight acquisition first so its eventual
	// resolution finds this mount gone.
	c.generation++

	c.releaseLocked()

	if c.hostdoc != nil {
		if err := c.hostdoc.SetContainerHTML(c.containerID, ""); err != nil {
			c.logWarn("Failed to clear screen container", map[string]interface{}{
				"container": c.containerID,
				"error":     err.Error(),
			})
		}
	}

	c.markup = ""
	c.failed = false
	c.info = nil
	c.state = domain.ScreenLoading
}

// State returns where the screen is in its lifecycle.
func (c *Controller) State() domain.ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Markup returns the trusted markup the screen currently shows: the
// rewritten design document when Ready, the fallback when Failed, empty
// while Loading.
func (c *Controller) Markup() domain.TrustedMarkup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markup
}

// Failed reports whether the screen is showing fallback content. The
// hosting shell renders its error indicator alongside the fallback when this
// is set.
func (c *Controller) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

// Info returns the document summary for the current mount, or nil when no
// info service is attached or description failed.
func (c *Controller) Info() *domain.DocumentInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info
}

// beginMount starts a fresh lifecycle: it invalidates the previous mount,
// releases whatever that mount still owned, and hands back the generation
// and loader the new mount runs under.
func (c *Controller) beginMount() (uint64, *resources.Loader) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	gen := c.generation

	c.releaseLocked()
	c.loader = resources.NewLoader(c.hostdoc, c.deps.Logger)

	c.state = domain.ScreenLoading
	c.markup = ""
	c.failed = false
	c.info = nil

	return gen, c.loader
}

// releaseLocked releases the current loader's owned resources. Callers hold
// the controller mutex.
func (c *Controller) releaseLocked() {
	if c.loader == nil {
		return
	}
	if err := c.loader.ReleaseAll(); err != nil {
		c.logWarn("Failed to release mount resources", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.loader = nil
}

// ensureStylesheets injects the companion stylesheets under the asset root.
func (c *Controller) ensureStylesheets(loader *resources.Loader) error {
	for _, name := range c.cfg.Stylesheets {
		if _, err := loader.EnsureStylesheet(c.cfg.AssetRoot + name); err != nil {
			return err
		}
	}
	return nil
}

// commitMount finishes a successful acquisition: rewrite, liveness check,
// markup commit, then companion scripts.
func (c *Controller) commitMount(ctx context.Context, gen uint64, loader *resources.Loader, raw string) {
	trusted := domain.TrustedMarkup(c.rewriter.Rewrite(raw))
	if trusted.Empty() {
		c.failMount(gen, &cerrors.AcquisitionError{URL: c.source.URL, Reason: "document reduced to empty markup"})
		return
	}

	info := c.describe(ctx, raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// Unmounted or remounted while acquisition was in flight.
		// Committing now would write into a torn-down screen.
		c.logDebug("Discarding stale mount result", map[string]interface{}{
			"source": c.source.URL,
		})
		return
	}

	if c.hostdoc != nil {
		if err := c.hostdoc.SetContainerHTML(c.containerID, string(trusted)); err != nil {
			c.failLocked(&cerrors.InjectionError{Op: "commit markup", Message: err.Error()})
			return
		}
	}

	// Scripts go in only after the markup commit so anything they run on
	// load observes the final DOM.
	for _, name := range c.cfg.Scripts {
		if _, err := loader.EnsureScript(c.cfg.AssetRoot+name, true); err != nil {
			c.failLocked(err)
			return
		}
	}

	c.markup = trusted
	c.info = info
	c.failed = false
	c.state = domain.ScreenReady
}

// failMount moves the screen to Failed with fallback content, unless the
// mount has gone stale, in which case nothing is touched.
func (c *Controller) failMount(gen uint64, cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logDebug("Discarding stale mount failure", map[string]interface{}{
			"source": c.source.URL,
			"error":  cause.Error(),
		})
		return
	}

	c.failLocked(cause)
}

// failLocked commits the fallback state. Callers hold the controller mutex
// and have verified liveness.
func (c *Controller) failLocked(cause error) {
	c.logError("Design screen failed, showing fallback", map[string]interface{}{
		"source": c.source.URL,
		"error":  cause.Error(),
	})

	c.markup = FallbackContent
	c.failed = true
	c.state = domain.ScreenFailed

	if c.hostdoc != nil {
		if err := c.hostdoc.SetContainerHTML(c.containerID, string(FallbackContent)); err != nil {
			c.logError("Failed to commit fallback content", map[string]interface{}{
				"container": c.containerID,
				"error":     err.Error(),
			})
		}
	}
}

// describe summarizes the acquired document when an info service is
// attached. Failures degrade to no info.
func (c *Controller) describe(ctx context.Context, raw string) *domain.DocumentInfo {
	if c.infoSvc == nil {
		return nil
	}

	info, err := c.infoSvc.Describe(ctx, raw, c.source.URL)
	if err != nil {
		c.logDebug("Failed to describe design document", map[string]interface{}{
			"source": c.source.URL,
			"error":  err.Error(),
		})
		return nil
	}

	return info
}

func (c *Controller) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Controller) logWarn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}

func (c *Controller) logError(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Error(msg, fields)
	}
}
