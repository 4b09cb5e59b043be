// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"designmount/core/domain"
)

// DocumentInfoService summarizes design documents for preview surfaces
type DocumentInfoService interface {
	// Describe extracts title, excerpt and content summaries from the given
	// document HTML. sourceURL may be empty for embedded documents.
	Describe(ctx context.Context, doc string, sourceURL string) (*domain.DocumentInfo, error)
}

// AssetCheck is the probe result for one rewritten asset reference
type AssetCheck struct {
	// Reference is the asset-root-relative reference that was probed
	Reference string `json:"reference"`

	// OK reports whether the asset resolved with a success status
	OK bool `json:"ok"`

	// StatusCode is the HTTP status the probe observed, 0 on transport errors
	StatusCode int `json:"statusCode,omitempty"`

	// Error carries the transport error message, if any
	Error string `json:"error,omitempty"`
}

// AssetAuditReport lists the probe results for a document's rewritten references
type AssetAuditReport struct {
	// Origin is the base the references were resolved against
	Origin string `json:"origin"`

	// References holds one check per distinct rewritten reference
	References []AssetCheck `json:"references"`
}

// AssetAuditService verifies that rewritten asset references resolve
type AssetAuditService interface {
	// Audit probes origin+reference for every rewritten asset reference in
	// the given markup and reports per-reference status.
	Audit(ctx context.Context, markup string, origin string) (*AssetAuditReport, error)
}
