package useragent

import (
	"sync/atomic"

	"github.com/dmitrymomot/devicecaps/pkg/cache"
)

// DefaultCacheSize bounds the number of distinct UA profiles kept in memory.
const DefaultCacheSize = 4096

// CachingMatcher memoizes complete per-UA profiles in a shared LRU so that
// the many request-scoped classifiers seeing the same popular UAs parse each
// string once. Safe for concurrent use.
type CachingMatcher struct {
	matcher  *Matcher
	profiles *cache.LRU[string, profile]
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// NewCachingMatcher wraps m. A non-positive size falls back to DefaultCacheSize.
func NewCachingMatcher(m *Matcher, size int) *CachingMatcher {
	if m == nil {
		m = NewMatcher()
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachingMatcher{
		matcher:  m,
		profiles: cache.NewLRU[string, profile](size),
	}
}

// lookup may compute the same profile twice under contention; both results
// are identical so the duplicate Put is harmless.
func (c *CachingMatcher) lookup(ua string) profile {
	if p, ok := c.profiles.Get(ua); ok {
		c.hits.Add(1)
		return p
	}
	c.misses.Add(1)
	p := c.matcher.profile(ua)
	c.profiles.Put(ua, p)
	return p
}

// Stats returns the cache hit and miss counters.
func (c *CachingMatcher) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached profiles.
func (c *CachingMatcher) Len() int { return c.profiles.Len() }

// Describe returns the cached client label.
func (c *CachingMatcher) Describe(ua string) string { return c.lookup(ua).client }

// IsBot reports crawlers and other automated clients.
func (c *CachingMatcher) IsBot(ua string) bool { return c.lookup(ua).bot }

// DeviceType returns the form factor; unrecognized clients are desktops.
func (c *CachingMatcher) DeviceType(ua string) DeviceType { return c.lookup(ua).deviceType }

// IsMobileUserAgent reports phones and tablets.
func (c *CachingMatcher) IsMobileUserAgent(ua string) bool { return c.lookup(ua).mobileUA }

// ScreenResolution returns the cached screen lookup.
func (c *CachingMatcher) ScreenResolution(ua string) (width, height int, ok bool) {
	p := c.lookup(ua)
	return p.screenWidth, p.screenHeight, p.screenKnown
}

// SupportsWebp reports lossy WebP decoding.
func (c *CachingMatcher) SupportsWebp(ua string) bool { return c.lookup(ua).webp }

// SupportsWebpLosslessAlpha reports lossless and alpha-channel WebP decoding.
func (c *CachingMatcher) SupportsWebpLosslessAlpha(ua string) bool { return c.lookup(ua).webpAlpha }

// SupportsWebpAnimated reports animated WebP decoding.
func (c *CachingMatcher) SupportsWebpAnimated(ua string) bool { return c.lookup(ua).webpAnimated }

// SupportsImageInlining reports data: URL images.
func (c *CachingMatcher) SupportsImageInlining(ua string) bool { return c.lookup(ua).imageInlining }

// SupportsLazyloadImages reports script-driven image lazy-loading.
func (c *CachingMatcher) SupportsLazyloadImages(ua string) bool { return c.lookup(ua).lazyload }

// SupportsCriticalCSS reports inlined critical CSS with deferred stylesheets.
func (c *CachingMatcher) SupportsCriticalCSS(ua string) bool { return c.lookup(ua).criticalCSS }

// SupportsCriticalImagesBeacon reports the client-side critical images beacon.
func (c *CachingMatcher) SupportsCriticalImagesBeacon(ua string) bool {
	return c.lookup(ua).imagesBeacon
}

// SupportsJSDefer reports deferred script execution for the given mobile policy.
func (c *CachingMatcher) SupportsJSDefer(ua string, allowMobile bool) bool {
	p := c.lookup(ua)
	if allowMobile {
		return p.jsDeferMobile
	}
	return p.jsDefer
}

// SupportsSplitHTML reports split-document rendering for the given mobile policy.
func (c *CachingMatcher) SupportsSplitHTML(ua string, allowMobile bool) bool {
	p := c.lookup(ua)
	if allowMobile {
		return p.splitHTMLMobile
	}
	return p.splitHTML
}

// CanPreloadResources reports <link rel=preload> support.
func (c *CachingMatcher) CanPreloadResources(ua string) bool { return c.lookup(ua).preload }

// HasChromeToken reports a case-sensitive "Chrome/" token.
func (c *CachingMatcher) HasChromeToken(ua string) bool { return c.lookup(ua).chromeToken }

// ChromeBuildAndPatch returns the cached Chrome build signature.
func (c *CachingMatcher) ChromeBuildAndPatch(ua string) (build, patch int, ok bool) {
	p := c.lookup(ua)
	return p.chromeBuild, p.chromePatch, p.chromeComplete
}
