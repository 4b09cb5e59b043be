// ABOUTME: Domain types for design documents and their processed forms
// ABOUTME: Models the raw export, injectable markup, and trusted markup stages

package domain

import (
	"errors"
	"html/template"
	"strings"
)

// RawDocument is an unprocessed design document, either fetched from a
// remote export or embedded at compile time.
type RawDocument string

// Validate checks that the document carries renderable content.
// A document that is empty or whitespace-only is not valid.
func (d RawDocument) Validate() error {
	if strings.TrimSpace(string(d)) == "" {
		return errors.New("design document is empty")
	}
	return nil
}

// TrustedMarkup is design-document markup that is safe to render without
// escaping. Its origin is a controlled asset, never user input. It is held
// exclusively by the screen controller for the lifetime of one mount.
type TrustedMarkup string

// HTML marks the markup for unescaped rendering in html/template.
func (m TrustedMarkup) HTML() template.HTML {
	return template.HTML(m)
}

// Empty reports whether the markup carries no renderable content.
func (m TrustedMarkup) Empty() bool {
	return strings.TrimSpace(string(m)) == ""
}

// ScreenState describes where a mounted screen is in its lifecycle.
type ScreenState int

const (
	// ScreenLoading is the initial state entered on mount.
	ScreenLoading ScreenState = iota

	// ScreenReady means acquisition and rewriting completed and the
	// trusted markup is committed.
	ScreenReady

	// ScreenFailed means acquisition or injection failed and the screen
	// shows fallback content instead.
	ScreenFailed
)

// String returns the state name for logging and response headers.
func (s ScreenState) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenReady:
		return "ready"
	case ScreenFailed:
		return "failed"
	default:
		return "unknown"
	}
}
