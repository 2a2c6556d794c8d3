// Package api provides the HTTP API layer for Web2One.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.1 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma validates request bodies from struct tags:
//
//	type AddCreditsRequest struct {
//	    Amount int `json:"amount" minimum:"1" maximum:"10000"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// 4. Authentication
//
// Conversion endpoints take an API key as a bearer token:
//
//	curl -X POST https://host/api/clone \
//	    -H "Authorization: Bearer w2o_..." \
//	    -d '{"url":"https://example.com"}'
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewConversionHandler(conversions, reconstructor, accounts, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":3000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 402,
//	    "title": "Payment Required",
//	    "detail": "No credits remaining. Please upgrade your plan."
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
