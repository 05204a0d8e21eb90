// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID when it is 1..128
// characters of [A-Za-z0-9_-] and otherwise generates a UUIDv4. The id is
// stored in the request context, echoed in the response header and exposed
// to the logger through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
