// ABOUTME: Resource loader ensures stylesheet and script elements exist exactly once in the host document
// ABOUTME: Keeps a per-mount arena of handles and releases only the owned ones on teardown

package resources

import (
	cerrors "designmount/core/errors"
	"designmount/core/interfaces"
)

// Loader injects companion stylesheets and scripts into a host document and
// records a handle for every resource it touched during one mount. Duplicate
// detection is by exact reference match: a second ensure call for the same
// reference, within a mount or after a remount, never creates a second
// element.
//
// A nil host document is not an error. It means the engine runs without a
// document to mutate, and every ensure call becomes a no-op returning a null
// handle.
type Loader struct {
	doc     interfaces.HostDocument
	logger  interfaces.Logger
	handles []*Handle
}

// NewLoader creates a loader bound to one mount of the given host document.
func NewLoader(doc interfaces.HostDocument, logger interfaces.Logger) *Loader {
	return &Loader{
		doc:    doc,
		logger: logger,
	}
}

// EnsureStylesheet makes sure a stylesheet link with the given href exists in
// the host document head. An existing link is handed back as a borrowed
// handle; a created one as an owned handle.
func (l *Loader) EnsureStylesheet(href string) (*Handle, error) {
	if l.doc == nil {
		return &Handle{kind: KindStylesheet, reference: href}, nil
	}

	if node := l.doc.FindStylesheet(href); node != nil {
		return l.track(node, KindStylesheet, href, false), nil
	}

	node, err := l.doc.AppendStylesheet(href)
	if err != nil {
		return nil, &cerrors.InjectionError{Op: "append stylesheet", Message: err.Error()}
	}

	return l.track(node, KindStylesheet, href, true), nil
}

// EnsureScript makes sure a script element with the given src exists in the
// host document body. An existing element is handed back as a borrowed
// handle; a created one as an owned handle carrying the defer attribute when
// deferred is true.
func (l *Loader) EnsureScript(src string, deferred bool) (*Handle, error) {
	if l.doc == nil {
		return &Handle{kind: KindScript, reference: src}, nil
	}

	if node := l.doc.FindScript(src); node != nil {
		return l.track(node, KindScript, src, false), nil
	}

	node, err := l.doc.AppendScript(src, deferred)
	if err != nil {
		return nil, &cerrors.InjectionError{Op: "append script", Message: err.Error()}
	}

	return l.track(node, KindScript, src, true), nil
}

// track records a handle in the mount's arena.
func (l *Loader) track(node interfaces.NodeRef, kind Kind, reference string, owned bool) *Handle {
	h := &Handle{
		node:      node,
		kind:      kind,
		reference: reference,
		owned:     owned,
	}
	l.handles = append(l.handles, h)
	return h
}

// Handles returns the handles recorded so far, owned and borrowed alike.
func (l *Loader) Handles() []*Handle {
	out := make([]*Handle, len(l.handles))
	copy(out, l.handles)
	return out
}

// ReleaseAll removes every owned handle's element from the host document and
// clears the arena. Borrowed handles are dropped from tracking without
// touching their elements. The first removal fault is returned after all
// handles have been processed; release keeps going so one stuck node cannot
// leak the rest.
func (l *Loader) ReleaseAll() error {
	var firstErr error

	for _, h := range l.handles {
		if !h.owned || h.node == nil {
			continue
		}
		if err := l.doc.RemoveNode(h.node); err != nil {
			if l.logger != nil {
				l.logger.Warn("Failed to remove injected resource", map[string]interface{}{
					"kind":      h.kind.String(),
					"reference": h.reference,
					"error":     err.Error(),
				})
			}
			if firstErr == nil {
				firstErr = &cerrors.InjectionError{Op: "remove " + h.kind.String(), Message: err.Error()}
			}
		}
	}

	l.handles = nil
	return firstErr
}
