// ABOUTME: Host document capability for mutating the hosting shell's markup
// ABOUTME: The engine asks for this capability instead of assuming a document exists

package interfaces

// NodeRef is an opaque reference to an element in the host document. The
// resource loader holds NodeRefs so it can remove on teardown exactly the
// elements it created.
type NodeRef interface {
	// Reference returns the href or src the element was looked up or
	// created with.
	Reference() string
}

// HostDocument is the capability to inspect and mutate the hosting shell's
// document. A nil HostDocument means the engine runs without a host document
// (markup-generation-only hosting); resource injection is then a no-op, not
// an error.
type HostDocument interface {
	// FindStylesheet returns a reference to an existing stylesheet link
	// with exactly the given href, or nil if none exists.
	FindStylesheet(href string) NodeRef

	// AppendStylesheet creates a stylesheet link with the given href and
	// appends it to the document head.
	AppendStylesheet(href string) (NodeRef, error)

	// FindScript returns a reference to an existing script element with
	// exactly the given src, or nil if none exists.
	FindScript(src string) NodeRef

	// AppendScript creates a script element with the given src and appends
	// it to the document body. When deferred is true the element carries
	// the defer attribute.
	AppendScript(src string, deferred bool) (NodeRef, error)

	// RemoveNode detaches a previously found or created element from the
	// document. Removing a node that is already detached is not an error.
	RemoveNode(ref NodeRef) error

	// SetContainerHTML replaces the inner HTML of the container element
	// with the given id.
	SetContainerHTML(id string, markup string) error

	// ContainerHTML returns the inner HTML of the container element with
	// the given id.
	ContainerHTML(id string) (string, error)

	// Serialize renders the full host document back to HTML.
	Serialize() (string, error)
}
