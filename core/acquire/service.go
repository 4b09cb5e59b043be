// ABOUTME: Content acquirer obtains the raw design document and reduces it to injectable markup
// ABOUTME: Remote sources go through cache, fetch and validation; embedded sources bypass every failure mode

package acquire

import (
	"context"
	"io"
	"strings"
	"time"

	"designmount/core/domain"
	cerrors "designmount/core/errors"
	"designmount/core/interfaces"
	"designmount/core/markup"
)

// defaultCacheTTL is how long acquired documents stay cached unless the
// caller overrides it.
const defaultCacheTTL = 1 * time.Hour

// Service acquires design documents. For remote sources it consults the
// cache, fetches, validates the payload, and reduces it to injectable
// markup. Embedded sources skip the network entirely; they exist to
// guarantee availability without a round trip.
type Service struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewService creates an acquisition service with the given dependencies.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps:     deps,
		cacheTTL: defaultCacheTTL,
	}
}

// SetCacheTTL overrides how long acquired documents stay cached. Zero or
// negative values are ignored.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// Acquire returns the injectable markup of the document the source
// describes: the body region with every script element removed.
//
// Remote acquisition fails with an AcquisitionError when the source URL is
// unusable, the fetch fails or returns a non-success status, or the payload
// is empty or whitespace-only. A missing network capability is reported as
// an EnvironmentUnavailableError instead, which callers treat as a silent
// skip rather than a user-facing failure. Embedded acquisition cannot fail;
// the literal still passes through extraction.
func (s *Service) Acquire(ctx context.Context, src domain.Source) (string, error) {
	if src.Embedded() {
		return markup.Extract(string(src.Document)), nil
	}

	if err := src.Validate(); err != nil {
		return "", &cerrors.AcquisitionError{URL: src.URL, Reason: err.Error()}
	}

	// Cache first: a hit serves the document even when the environment has
	// no network capability at all.
	if cached, ok := s.cachedMarkup(ctx, src.URL); ok {
		return cached, nil
	}

	if s.deps.HTTPClient == nil {
		return "", &cerrors.EnvironmentUnavailableError{Capability: "network"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, src.URL)
	if err != nil {
		return "", &cerrors.AcquisitionError{URL: src.URL, Reason: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &cerrors.AcquisitionError{URL: src.URL, StatusCode: resp.StatusCode()}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &cerrors.AcquisitionError{URL: src.URL, Reason: "reading response: " + err.Error()}
	}

	if err := domain.RawDocument(raw).Validate(); err != nil {
		return "", &cerrors.AcquisitionError{URL: src.URL, Reason: "empty document"}
	}

	m := markup.Extract(string(raw))
	s.cacheMarkup(ctx, src.URL, m)

	return m, nil
}

// cachedMarkup looks the URL up in the cache. Any cache failure counts as a
// miss.
func (s *Service) cachedMarkup(ctx context.Context, url string) (string, bool) {
	if s.deps.Cache == nil {
		return "", false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(url))
	if err != nil || len(data) == 0 {
		return "", false
	}

	return string(data), true
}

// cacheMarkup stores the extracted markup. Cache failures are logged and
// ignored; caching is an optimization, never a requirement.
func (s *Service) cacheMarkup(ctx context.Context, url string, m string) {
	if s.deps.Cache == nil || strings.TrimSpace(m) == "" {
		return
	}

	if err := s.deps.Cache.Set(ctx, cacheKey(url), []byte(m), s.cacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Debug("Failed to cache design document", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
}

// cacheKey namespaces document entries in the shared cache.
func cacheKey(url string) string {
	return "design:" + url
}
