package resources

import (
	"errors"
	"fmt"

	"designmount/core/interfaces"
)

// fakeNode is a test implementation of the NodeRef interface
type fakeNode struct {
	reference string
	removed   bool
}

func (n *fakeNode) Reference() string {
	return n.reference
}

// fakeHostDocument is a stateful test implementation of the HostDocument
// interface. Error fields let individual tests inject faults.
type fakeHostDocument struct {
	stylesheets []*fakeNode
	scripts     []*fakeNode
	container   map[string]string

	appendStylesheetErr error
	appendScriptErr     error
	removeErr           error
	setContainerErr     error
}

func newFakeHostDocument() *fakeHostDocument {
	return &fakeHostDocument{
		container: make(map[string]string),
	}
}

func (d *fakeHostDocument) FindStylesheet(href string) interfaces.NodeRef {
	for _, n := range d.stylesheets {
		if !n.removed && n.reference == href {
			return n
		}
	}
	return nil
}

func (d *fakeHostDocument) AppendStylesheet(href string) (interfaces.NodeRef, error) {
	if d.appendStylesheetErr != nil {
		return nil, d.appendStylesheetErr
	}
	n := &fakeNode{reference: href}
	d.stylesheets = append(d.stylesheets, n)
	return n, nil
}

func (d *fakeHostDocument) FindScript(src string) interfaces.NodeRef {
	for _, n := range d.scripts {
		if !n.removed && n.reference == src {
			return n
		}
	}
	return nil
}

func (d *fakeHostDocument) AppendScript(src string, deferred bool) (interfaces.NodeRef, error) {
	if d.appendScriptErr != nil {
		return nil, d.appendScriptErr
	}
	n := &fakeNode{reference: src}
	d.scripts = append(d.scripts, n)
	return n, nil
}

func (d *fakeHostDocument) RemoveNode(ref interfaces.NodeRef) error {
	if d.removeErr != nil {
		return d.removeErr
	}
	n, ok := ref.(*fakeNode)
	if !ok {
		return errors.New("unknown node reference")
	}
	n.removed = true
	return nil
}

func (d *fakeHostDocument) SetContainerHTML(id string, markup string) error {
	if d.setContainerErr != nil {
		return d.setContainerErr
	}
	d.container[id] = markup
	return nil
}

func (d *fakeHostDocument) ContainerHTML(id string) (string, error) {
	markup, ok := d.container[id]
	if !ok {
		return "", fmt.Errorf("container %q not found", id)
	}
	return markup, nil
}

func (d *fakeHostDocument) Serialize() (string, error) {
	return fmt.Sprintf("stylesheets=%d scripts=%d", d.countStylesheets(), d.countScripts()), nil
}

// countStylesheets counts stylesheet elements still attached to the document
func (d *fakeHostDocument) countStylesheets() int {
	count := 0
	for _, n := range d.stylesheets {
		if !n.removed {
			count++
		}
	}
	return count
}

// countScripts counts script elements still attached to the document
func (d *fakeHostDocument) countScripts() int {
	count := 0
	for _, n := range d.scripts {
		if !n.removed {
			count++
		}
	}
	return count
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
