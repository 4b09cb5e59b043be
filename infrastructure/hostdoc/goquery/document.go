// ABOUTME: Host document implementation backed by a goquery document tree
// ABOUTME: Gives the engine a mutable server-side document to inject into and serialize

package goquery

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"designmount/core/interfaces"

	gq "github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nodeRef points at one element in the document tree.
type nodeRef struct {
	node      *html.Node
	reference string
}

// Reference returns the href or src the element was looked up or created with
func (r *nodeRef) Reference() string {
	return r.reference
}

// Document implements the HostDocument interface on a parsed HTML tree. A
// goquery tree is not safe for concurrent mutation, so every operation takes
// the document lock.
type Document struct {
	mu  sync.Mutex
	doc *gq.Document
}

// NewDocument parses the given shell HTML into a host document. Parsing is
// lenient; fragments grow the implied html, head and body elements.
func NewDocument(shell string) (*Document, error) {
	doc, err := gq.NewDocumentFromReader(strings.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("parse shell document: %w", err)
	}

	return &Document{doc: doc}, nil
}

// FindStylesheet returns a reference to an existing stylesheet link with
// exactly the given href, or nil
func (d *Document) FindStylesheet(href string) interfaces.NodeRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.findByAttr(`link[rel="stylesheet"]`, "href", href)
}

// AppendStylesheet creates a stylesheet link in the document head
func (d *Document) AppendStylesheet(href string) (interfaces.NodeRef, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	head := d.doc.Find("head")
	if head.Length() == 0 {
		return nil, errors.New("host document has no head element")
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: href},
		},
	}
	head.First().AppendNodes(node)

	return &nodeRef{node: node, reference: href}, nil
}

// FindScript returns a reference to an existing script element with exactly
// the given src, or nil
func (d *Document) FindScript(src string) interfaces.NodeRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.findByAttr("script[src]", "src", src)
}

// AppendScript creates a script element in the document body
func (d *Document) AppendScript(src string, deferred bool) (interfaces.NodeRef, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := d.doc.Find("body")
	if body.Length() == 0 {
		return nil, errors.New("host document has no body element")
	}

	attrs := []html.Attribute{{Key: "src", Val: src}}
	if deferred {
		attrs = append(attrs, html.Attribute{Key: "defer"})
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     attrs,
	}
	body.First().AppendNodes(node)

	return &nodeRef{node: node, reference: src}, nil
}

// RemoveNode detaches a previously found or created element. Removing an
// already detached node is not an error.
func (d *Document) RemoveNode(ref interfaces.NodeRef) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := ref.(*nodeRef)
	if !ok {
		return errors.New("node reference does not belong to this document")
	}

	if r.node.Parent == nil {
		return nil
	}
	r.node.Parent.RemoveChild(r.node)

	return nil
}

// SetContainerHTML replaces the inner HTML of the container with the given id
func (d *Document) SetContainerHTML(id string, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	container := d.doc.Find("#" + id)
	if container.Length() == 0 {
		return fmt.Errorf("container element #%s not found", id)
	}

	container.First().SetHtml(markup)
	return nil
}

// ContainerHTML returns the inner HTML of the container with the given id
func (d *Document) ContainerHTML(id string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	container := d.doc.Find("#" + id)
	if container.Length() == 0 {
		return "", fmt.Errorf("container element #%s not found", id)
	}

	return container.First().Html()
}

// Serialize renders the full document back to HTML
func (d *Document) Serialize() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Html()
}

// findByAttr returns the first element matching the selector whose attribute
// equals the wanted value exactly. Callers hold the document lock.
func (d *Document) findByAttr(selector string, attr string, want string) interfaces.NodeRef {
	var found *html.Node

	d.doc.Find(selector).EachWithBreak(func(_ int, s *gq.Selection) bool {
		if value, exists := s.Attr(attr); exists && value == want {
			found = s.Nodes[0]
			return false
		}
		return true
	})

	if found == nil {
		return nil
	}

	return &nodeRef{node: found, reference: want}
}
