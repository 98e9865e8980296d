// Package api provides the HTTP API layer for the TikTok downloader.
// It builds a gin engine around the extraction handler.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: gin engine configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Middleware
//
// Every request passes through, in order:
// - panic recovery rendering the 500 envelope
// - request logging with unique request IDs
// - CORS headers, answering OPTIONS with an empty 200
// - rate limiting per IP address
// - gzip compression (when enabled)
//
// # Usage Example
//
//	router := api.NewRouter(api.RouterConfig{
//	    Service:    extract.NewService(deps, extract.DefaultOptions()),
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    EnableGzip: true,
//	})
//	defer router.Close()
//
//	http.ListenAndServe(":8000", router)
//
// # Response Format
//
// Every response is a JSON envelope with status and code:
//
//	{
//	    "status": false,
//	    "code": 400,
//	    "message": "URL parameter is required"
//	}
//
// Domain errors are mapped to status codes by api/dto/mappers.
package api
