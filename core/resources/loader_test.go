package resources

import (
	"errors"
	"testing"

	cerrors "designmount/core/errors"
)

func TestEnsureStylesheet_CreatesWhenAbsent(t *testing.T) {
	doc := newFakeHostDocument()
	loader := NewLoader(doc, nil)

	h, err := loader.EnsureStylesheet("/assets/common.css")

	if err != nil {
		t.Fatalf("EnsureStylesheet returned error: %v", err)
	}
	if !h.Owned() {
		t.Error("handle for a created element should be owned")
	}
	if h.Reference() != "/assets/common.css" {
		t.Errorf("Reference = %v, want /assets/common.css", h.Reference())
	}
	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets, want 1", doc.countStylesheets())
	}
}

func TestEnsureStylesheet_BorrowsWhenPresent(t *testing.T) {
	doc := newFakeHostDocument()
	doc.stylesheets = append(doc.stylesheets, &fakeNode{reference: "/assets/common.css"})
	loader := NewLoader(doc, nil)

	h, err := loader.EnsureStylesheet("/assets/common.css")

	if err != nil {
		t.Fatalf("EnsureStylesheet returned error: %v", err)
	}
	if h.Owned() {
		t.Error("handle for a pre-existing element should be borrowed, not owned")
	}
	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets, want 1 (no duplicate created)", doc.countStylesheets())
	}
}

func TestEnsureStylesheet_NeverCreatesDuplicateWithinMount(t *testing.T) {
	doc := newFakeHostDocument()
	loader := NewLoader(doc, nil)

	first, _ := loader.EnsureStylesheet("/assets/screen.css")
	second, _ := loader.EnsureStylesheet("/assets/screen.css")

	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets, want 1", doc.countStylesheets())
	}
	if !first.Owned() {
		t.Error("first ensure should own the created element")
	}
	if second.Owned() {
		t.Error("second ensure should borrow the element the first one created")
	}
}

func TestEnsureScript_CreatesWhenAbsent(t *testing.T) {
	doc := newFakeHostDocument()
	loader := NewLoader(doc, nil)

	h, err := loader.EnsureScript("/assets/screen.js", true)

	if err != nil {
		t.Fatalf("EnsureScript returned error: %v", err)
	}
	if !h.Owned() {
		t.Error("handle for a created script should be owned")
	}
	if h.Kind() != KindScript {
		t.Errorf("Kind = %v, want script", h.Kind())
	}
	if doc.countScripts() != 1 {
		t.Errorf("document has %d scripts, want 1", doc.countScripts())
	}
}

func TestEnsureScript_BorrowsWhenPresent(t *testing.T) {
	doc := newFakeHostDocument()
	doc.scripts = append(doc.scripts, &fakeNode{reference: "/assets/screen.js"})
	loader := NewLoader(doc, nil)

	h, err := loader.EnsureScript("/assets/screen.js", false)

	if err != nil {
		t.Fatalf("EnsureScript returned error: %v", err)
	}
	if h.Owned() {
		t.Error("handle for a pre-existing script should be borrowed")
	}
	if doc.countScripts() != 1 {
		t.Errorf("document has %d scripts, want 1", doc.countScripts())
	}
}

func TestEnsure_NilDocumentReturnsNullHandle(t *testing.T) {
	loader := NewLoader(nil, nil)

	style, err := loader.EnsureStylesheet("/assets/common.css")
	if err != nil {
		t.Fatalf("EnsureStylesheet returned error: %v", err)
	}
	script, err := loader.EnsureScript("/assets/screen.js", true)
	if err != nil {
		t.Fatalf("EnsureScript returned error: %v", err)
	}

	if !style.Null() || !script.Null() {
		t.Error("handles should be null without a host document")
	}
	if len(loader.Handles()) != 0 {
		t.Errorf("arena has %d handles, want 0 (nothing to track)", len(loader.Handles()))
	}
	if err := loader.ReleaseAll(); err != nil {
		t.Errorf("ReleaseAll returned error for null handles: %v", err)
	}
}

func TestEnsureStylesheet_AppendFault(t *testing.T) {
	doc := newFakeHostDocument()
	doc.appendStylesheetErr = errors.New("host document has no head")
	loader := NewLoader(doc, nil)

	h, err := loader.EnsureStylesheet("/assets/common.css")

	if err == nil {
		t.Fatal("EnsureStylesheet should surface append faults")
	}
	if !cerrors.IsInjection(err) {
		t.Errorf("error should be an InjectionError, got %T", err)
	}
	if h != nil {
		t.Error("no handle should be returned on fault")
	}
	if len(loader.Handles()) != 0 {
		t.Error("faulted ensure must not record a handle")
	}
}

func TestReleaseAll_RemovesOwnedOnly(t *testing.T) {
	doc := newFakeHostDocument()
	borrowed := &fakeNode{reference: "/assets/common.css"}
	doc.stylesheets = append(doc.stylesheets, borrowed)
	loader := NewLoader(doc, nil)

	loader.EnsureStylesheet("/assets/common.css")
	loader.EnsureStylesheet("/assets/screen.css")
	loader.EnsureScript("/assets/screen.js", true)

	if err := loader.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll returned error: %v", err)
	}

	if borrowed.removed {
		t.Error("borrowed stylesheet must never be removed on release")
	}
	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets after release, want 1 (the borrowed one)", doc.countStylesheets())
	}
	if doc.countScripts() != 0 {
		t.Errorf("document has %d scripts after release, want 0", doc.countScripts())
	}
	if len(loader.Handles()) != 0 {
		t.Error("arena should be empty after release")
	}
}

func TestReleaseAll_RemoveFaultSurfacesAndKeepsGoing(t *testing.T) {
	doc := newFakeHostDocument()
	warned := 0
	logger := &mockLogger{
		warnFunc: func(msg string, fields map[string]interface{}) {
			warned++
		},
	}
	loader := NewLoader(doc, logger)

	loader.EnsureStylesheet("/assets/common.css")
	loader.EnsureScript("/assets/screen.js", false)
	doc.removeErr = errors.New("node is busy")

	err := loader.ReleaseAll()

	if err == nil {
		t.Fatal("ReleaseAll should surface removal faults")
	}
	if !cerrors.IsInjection(err) {
		t.Errorf("error should be an InjectionError, got %T", err)
	}
	if warned != 2 {
		t.Errorf("expected a warning per failed removal, got %d", warned)
	}
	if len(loader.Handles()) != 0 {
		t.Error("arena should be cleared even when removals fault")
	}
}

func TestRemount_DuplicateDetectionAcrossLoaders(t *testing.T) {
	doc := newFakeHostDocument()

	// First mount creates the element and tears it down.
	first := NewLoader(doc, nil)
	first.EnsureStylesheet("/assets/common.css")
	if err := first.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll returned error: %v", err)
	}

	// Remount after teardown creates it fresh.
	second := NewLoader(doc, nil)
	h, _ := second.EnsureStylesheet("/assets/common.css")
	if !h.Owned() {
		t.Error("remount after release should create and own the element")
	}
	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets, want 1", doc.countStylesheets())
	}

	// A third mount while the second is still live borrows instead.
	third := NewLoader(doc, nil)
	b, _ := third.EnsureStylesheet("/assets/common.css")
	if b.Owned() {
		t.Error("ensure against a live element from another mount should borrow")
	}
	if doc.countStylesheets() != 1 {
		t.Errorf("document has %d stylesheets, want 1 (never duplicated)", doc.countStylesheets())
	}
}

func TestHandles_ReturnsCopy(t *testing.T) {
	doc := newFakeHostDocument()
	loader := NewLoader(doc, nil)
	loader.EnsureStylesheet("/assets/common.css")

	handles := loader.Handles()
	handles[0] = nil

	if loader.Handles()[0] == nil {
		t.Error("Handles should return a copy of the arena")
	}
}
