package screen

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"designmount/core/domain"
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
// interface. It records the order of mutations so tests can assert the
// styles-before-commit and scripts-after-commit guarantees.
type fakeHostDocument struct {
	stylesheets []*fakeNode
	scripts     []*fakeNode
	container   map[string]string

	// ops records every mutation in order: "stylesheet <href>",
	// "script <src>", "container <markup>", "remove <ref>".
	ops []string

	appendStylesheetErr error
	appendScriptErr     error
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
	d.ops = append(d.ops, "stylesheet "+href)
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
	d.ops = append(d.ops, "script "+src)
	return n, nil
}

func (d *fakeHostDocument) RemoveNode(ref interfaces.NodeRef) error {
	n, ok := ref.(*fakeNode)
	if !ok {
		return errors.New("unknown node reference")
	}
	n.removed = true
	d.ops = append(d.ops, "remove "+n.reference)
	return nil
}

func (d *fakeHostDocument) SetContainerHTML(id string, markup string) error {
	if d.setContainerErr != nil {
		return d.setContainerErr
	}
	d.container[id] = markup
	d.ops = append(d.ops, "container "+markup)
	return nil
}

func (d *fakeHostDocument) ContainerHTML(id string) (string, error) {
	markup, ok := d.container[id]
	if !ok {
		return "", errors.New("container not found")
	}
	return markup, nil
}

func (d *fakeHostDocument) Serialize() (string, error) {
	return "", nil
}

func (d *fakeHostDocument) countStylesheets() int {
	count := 0
	for _, n := range d.stylesheets {
		if !n.removed {
			count++
		}
	}
	return count
}

func (d *fakeHostDocument) countScripts() int {
	count := 0
	for _, n := range d.scripts {
		if !n.removed {
			count++
		}
	}
	return count
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// mockInfoService is a mock implementation of the DocumentInfoService interface
type mockInfoService struct {
	describeFunc func(ctx context.Context, doc string, sourceURL string) (*domain.DocumentInfo, error)
}

func (m *mockInfoService) Describe(ctx context.Context, doc string, sourceURL string) (*domain.DocumentInfo, error) {
	if m.describeFunc != nil {
		return m.describeFunc(ctx, doc, sourceURL)
	}
	return &domain.DocumentInfo{}, nil
}
