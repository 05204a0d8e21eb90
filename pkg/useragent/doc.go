// Package useragent classifies HTTP User-Agent strings and answers the
// capability questions a page-rewriting front end asks about a client.
//
// Parse recognizes the client category (desktop, mobile, tablet, TV,
// console, bot), the operating system and the browser family with its
// major version. Matcher layers the capability rules on top: WebP variants,
// image inlining, lazy-loading, deferred JS, split HTML, preload, screen
// size and the Chrome build signature.
//
// Version gates are evaluated against the rendering engine. On iOS every
// browser shell (CriOS, FxiOS, EdgiOS) runs the system WebKit, so the iOS
// release stands in for the Safari version there.
//
// Matcher is immutable after NewMatcher returns and serves every request
// concurrently. CachingMatcher keeps complete per-UA profiles in a bounded
// LRU for servers where a few UA strings dominate:
//
//	m := useragent.NewCachingMatcher(useragent.NewMatcher(), 4096)
//	if m.SupportsWebp(r.UserAgent()) {
//	    // serve .webp variants on rewritten URLs
//	}
//	log.Info("request", "client", m.Describe(r.UserAgent()))
//
// Screen sizes come from DefaultScreenRules or from a YAML ScreenTable loaded
// through NewFromConfig:
//
//	screens:
//	  - pattern: "pixel 7"
//	    width: 1080
//	    height: 2400
//
// Parse returns a usable UserAgent together with ErrEmptyUserAgent,
// ErrUnknownDevice or ErrMalformedUserAgent. Matcher never returns errors:
// unrecognized clients get conservative answers.
package useragent
