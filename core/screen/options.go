// ABOUTME: Functional options for configuring a screen controller
// ABOUTME: Cover the host document, the asset namespace, and acquisition tuning

package screen

import (
	"time"

	"designmount/core/interfaces"
)

// Option configures a screen controller at construction time.
type Option func(*Controller)

// WithHostDocument attaches the hosting shell's document. Without one the
// controller still acquires and holds trusted markup, but resource injection
// and markup commits become no-ops.
func WithHostDocument(doc interfaces.HostDocument) Option {
	return func(c *Controller) {
		c.hostdoc = doc
	}
}

// WithContainerID sets the id of the host document element the screen
// renders into. Empty values are ignored.
func WithContainerID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.containerID = id
		}
	}
}

// WithAssetRoot sets the absolute path prefix the hosting application serves
// companion assets under. Empty values are ignored.
func WithAssetRoot(root string) Option {
	return func(c *Controller) {
		if root != "" {
			c.cfg.AssetRoot = root
		}
	}
}

// WithImageDir sets the design export's image sub-directory name.
func WithImageDir(dir string) Option {
	return func(c *Controller) {
		if dir != "" {
			c.cfg.ImageDir = dir
		}
	}
}

// WithStylesheets sets the companion stylesheet filenames the controller
// ensures on mount.
func WithStylesheets(names ...string) Option {
	return func(c *Controller) {
		if len(names) > 0 {
			c.cfg.Stylesheets = names
		}
	}
}

// WithScripts sets the companion script filenames the controller ensures
// after markup commit.
func WithScripts(names ...string) Option {
	return func(c *Controller) {
		if len(names) > 0 {
			c.cfg.Scripts = names
		}
	}
}

// WithCacheTTL sets how long acquired documents stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Controller) {
		c.cacheTTL = ttl
	}
}

// WithDocumentInfo attaches a service that summarizes the acquired document
// for preview surfaces. Description failures never block a mount.
func WithDocumentInfo(svc interfaces.DocumentInfoService) Option {
	return func(c *Controller) {
		c.infoSvc = svc
	}
}
