// ABOUTME: Source descriptor for design document acquisition
// ABOUTME: A document comes either from a remote export URL or an embedded literal

package domain

import (
	"errors"
	"net/url"
)

// Source describes where a design document comes from. Exactly one of the
// two modes is set: a remote export URL, or a document embedded at compile
// time. Embedded sources exist to guarantee availability without a network
// round trip.
type Source struct {
	// URL is the remote export location. Empty for embedded sources.
	URL string

	// Document is the embedded design document. Used when URL is empty.
	Document RawDocument
}

// RemoteSource describes a design document fetched from a URL.
func RemoteSource(exportURL string) Source {
	return Source{URL: exportURL}
}

// EmbeddedSource describes a design document known at compile time.
func EmbeddedSource(document string) Source {
	return Source{Document: RawDocument(document)}
}

// Embedded reports whether the source carries its document inline.
func (s Source) Embedded() bool {
	return s.URL == ""
}

// Validate checks that the source describes a usable document location.
func (s Source) Validate() error {
	if s.Embedded() {
		return s.Document.Validate()
	}

	parsed, err := url.Parse(s.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("source URL is not a valid absolute URL")
	}

	return nil
}
