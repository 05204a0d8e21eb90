// Package device classifies the client behind a single HTTP request so a
// content-rewriting pipeline can decide which optimizations are safe.
//
// A Properties wraps the request's User-Agent and Accept header and answers
// capability queries (image inlining, lazy-loading, deferred JS, split HTML,
// preload, WebP variants, screen size, form factor, preferred image quality).
// Each answer comes from a shared Matcher on first use and is memoized in a
// tri-state cell until SetUserAgent is called again.
//
// # WebP
//
// SupportsWebpInPlace trusts the Accept header alone, since the response can
// carry Vary: Accept. SupportsWebpRewrittenURLs also accepts the matcher's
// UA-based verdict but refuses clients whose UA carries a Chrome token
// without a full Chrome version, because a rewritten URL may be cached and
// served to other clients.
//
// # Usage
//
//	m := useragent.NewCachingMatcher(useragent.NewMatcher(), 0)
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(m, device.WithPreferredImageQualities(
//	    []int{80, 70, 60, 50}, []int{85, 75, 65, 55},
//	)))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    p := device.FromContext(r.Context())
//	    if p.SupportsWebpRewrittenURLs() {
//	        // emit .webp URLs
//	    }
//	})
//
// Properties is owned by one request and is not safe for concurrent use.
// The Matcher is shared and must be.
package device
