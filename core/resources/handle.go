// ABOUTME: Resource handles track stylesheet and script elements injected into the host document
// ABOUTME: Each handle is tagged owned or borrowed so teardown removes exactly what this mount created

package resources

import (
	"designmount/core/interfaces"
)

// Kind identifies the type of resource a handle refers to.
type Kind int

const (
	// KindStylesheet is a stylesheet link element in the document head.
	KindStylesheet Kind = iota

	// KindScript is a script element in the document body.
	KindScript
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindStylesheet:
		return "stylesheet"
	case KindScript:
		return "script"
	default:
		return "resource"
	}
}

// Handle is a reference to a stylesheet or script element in the host
// document. A handle is owned when this mount created the element, and
// borrowed when the element already existed (injected by the static shell or
// by an earlier mount). Borrowed handles are tracked but never removed on
// release; removing an element another mount relies on would break that
// mount.
type Handle struct {
	node      interfaces.NodeRef
	kind      Kind
	reference string
	owned     bool
}

// Reference returns the href or src the handle was ensured with.
func (h *Handle) Reference() string {
	return h.reference
}

// Kind returns the resource type the handle refers to.
func (h *Handle) Kind() Kind {
	return h.kind
}

// Owned reports whether this mount created the underlying element and is
// therefore responsible for removing it on release.
func (h *Handle) Owned() bool {
	return h.owned
}

// Null reports whether the handle refers to no element at all. Null handles
// come back when the engine runs without a host document; they satisfy the
// caller without anything to track or remove.
func (h *Handle) Null() bool {
	return h.node == nil
}
