package useragent_test

import (
	"sync"
	"testing"

	"github.com/dmitrymomot/devicecaps/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingMatcher_AgreesWithMatcher(t *testing.T) {
	t.Parallel()
	m := useragent.NewMatcher()
	c := useragent.NewCachingMatcher(m, 16)

	for _, ua := range []string{chromeDesktopUA, safariMobileUA, edgeBrowserUA, androidTabletUA, botUA, samsungBrowserUA, ucBrowserUA, emptyUA, pixel7UA, partialChromeUA, cubotUA, criosUA, fxiosUA} {
		assert.Equal(t, m.Describe(ua), c.Describe(ua), ua)
		assert.Equal(t, m.IsBot(ua), c.IsBot(ua), ua)
		assert.Equal(t, m.DeviceType(ua), c.DeviceType(ua), ua)
		assert.Equal(t, m.IsMobileUserAgent(ua), c.IsMobileUserAgent(ua), ua)
		assert.Equal(t, m.SupportsWebp(ua), c.SupportsWebp(ua), ua)
		assert.Equal(t, m.SupportsWebpLosslessAlpha(ua), c.SupportsWebpLosslessAlpha(ua), ua)
		assert.Equal(t, m.SupportsWebpAnimated(ua), c.SupportsWebpAnimated(ua), ua)
		assert.Equal(t, m.SupportsImageInlining(ua), c.SupportsImageInlining(ua), ua)
		assert.Equal(t, m.SupportsLazyloadImages(ua), c.SupportsLazyloadImages(ua), ua)
		assert.Equal(t, m.SupportsCriticalCSS(ua), c.SupportsCriticalCSS(ua), ua)
		assert.Equal(t, m.SupportsCriticalImagesBeacon(ua), c.SupportsCriticalImagesBeacon(ua), ua)
		assert.Equal(t, m.SupportsJSDefer(ua, false), c.SupportsJSDefer(ua, false), ua)
		assert.Equal(t, m.SupportsJSDefer(ua, true), c.SupportsJSDefer(ua, true), ua)
		assert.Equal(t, m.SupportsSplitHTML(ua, false), c.SupportsSplitHTML(ua, false), ua)
		assert.Equal(t, m.SupportsSplitHTML(ua, true), c.SupportsSplitHTML(ua, true), ua)
		assert.Equal(t, m.CanPreloadResources(ua), c.CanPreloadResources(ua), ua)
		assert.Equal(t, m.HasChromeToken(ua), c.HasChromeToken(ua), ua)

		mw, mh, mok := m.ScreenResolution(ua)
		cw, ch, cok := c.ScreenResolution(ua)
		assert.Equal(t, []any{mw, mh, mok}, []any{cw, ch, cok}, ua)

		mb, mp, mok := m.ChromeBuildAndPatch(ua)
		cb, cp, cok := c.ChromeBuildAndPatch(ua)
		assert.Equal(t, []any{mb, mp, mok}, []any{cb, cp, cok}, ua)
	}
}

func TestCachingMatcher_ParsesOncePerUserAgent(t *testing.T) {
	t.Parallel()
	c := useragent.NewCachingMatcher(nil, 8)

	assert.True(t, c.SupportsWebp(chromeDesktopUA))
	assert.True(t, c.SupportsLazyloadImages(chromeDesktopUA))
	assert.False(t, c.IsBot(chromeDesktopUA))

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, 1, c.Len())

	assert.True(t, c.IsBot(botUA))
	_, misses = c.Stats()
	assert.Equal(t, uint64(2), misses)
	assert.Equal(t, 2, c.Len())
}

func TestCachingMatcher_EvictsBeyondCapacity(t *testing.T) {
	t.Parallel()
	c := useragent.NewCachingMatcher(useragent.NewMatcher(), 2)

	c.IsBot(chromeDesktopUA)
	c.IsBot(safariMobileUA)
	c.IsBot(botUA)
	assert.Equal(t, 2, c.Len())

	// chromeDesktopUA was evicted and has to be recomputed
	c.IsBot(chromeDesktopUA)
	_, misses := c.Stats()
	assert.Equal(t, uint64(4), misses)
}

func TestCachingMatcher_DefaultSize(t *testing.T) {
	t.Parallel()
	c := useragent.NewCachingMatcher(nil, 0)
	require.NotNil(t, c)
	assert.True(t, c.SupportsWebp(chromeDesktopUA))
}

func TestCachingMatcher_Concurrent(t *testing.T) {
	t.Parallel()
	c := useragent.NewCachingMatcher(useragent.NewMatcher(), 4)
	userAgents := []string{chromeDesktopUA, safariMobileUA, edgeBrowserUA, botUA, pixel7UA}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ua := userAgents[(i+j)%len(userAgents)]
				_ = c.SupportsJSDefer(ua, true)
				_, _, _ = c.ScreenResolution(ua)
			}
		}(i)
	}
	wg.Wait()

	hits, misses := c.Stats()
	assert.Equal(t, uint64(32*100*2), hits+misses)
	assert.LessOrEqual(t, c.Len(), 4)
}
