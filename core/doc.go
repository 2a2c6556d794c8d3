// Package core contains the business logic for Web2One.
// It is framework-agnostic: no HTTP server or database driver is imported here.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ConversionRequest, StepEvent, User, Project, ...)
// - fetch: ProxyFetcher, which walks a chain of relays until one returns a usable page
// - reconstruct: Prompt building, model invocation and output cleanup
// - conversion: Admission checks and the four step orchestrator
// - credits: Balance checks, decrements and plan changes
// - accounts: Users and API keys
// - projects: Project history
// - errors: Custom error types mapped to HTTP statuses by the api layer
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage, generator)
//
// # Usage Example
//
//	import (
//	    "web2one-api/core/conversion"
//	    "web2one-api/core/domain"
//	)
//
//	svc := conversion.NewService(fetcher, reconstructor, projects, credits, conversion.Config{}, logger)
//
//	outcome, err := svc.Convert(ctx, userID, domain.ConversionRequest{
//	    SourceURL: "https://example.com",
//	}, events)
package core
