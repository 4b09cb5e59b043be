// Package core contains the business logic for the DesignMount engine.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Source, TrustedMarkup, ScreenState, etc.)
// - markup: Extraction of the injectable body region from a design export
// - rewrite: Asset reference rewriting onto the hosting asset root
// - acquire: Document acquisition with cache, fetch and validation
// - resources: Idempotent stylesheet and script injection with ownership tracking
// - screen: The mount/unmount lifecycle controller for one design screen
// - docinfo: Readable summaries of design documents for preview surfaces
// - services: Supporting services such as the asset audit
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, host document)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - A missing capability (nil cache, nil HTTP client) degrades behavior, it never panics
//
// # Usage Example
//
//	import (
//	    "designmount/core/domain"
//	    "designmount/core/interfaces"
//	    "designmount/core/screen"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create a controller for a remote design screen
//	ctrl := screen.NewController(deps,
//	    domain.RemoteSource("https://designs.example.com/welcome.html"),
//	    screen.WithHostDocument(hostDoc),
//	)
//
//	// Run the lifecycle
//	state := ctrl.Mount(ctx)
//	defer ctrl.Unmount()
package core
