package device

import (
	"strings"

	"github.com/dmitrymomot/devicecaps/pkg/useragent"
)

const webpMimeType = "image/webp"

// Properties classifies one request's client. Every query consults the
// Matcher at most once and memoizes the answer until SetUserAgent is called
// again. A Properties is owned by a single request and is not safe for
// concurrent use.
type Properties struct {
	matcher Matcher

	userAgent    string
	acceptHeader string

	imageInlining   lazyBool
	lazyloadImages  lazyBool
	criticalCSS     lazyBool
	imagesBeacon    lazyBool
	jsDefer         lazyBool
	splitHTML       lazyBool
	acceptsWebp     lazyBool
	webpRewritten   lazyBool
	webpAlpha       lazyBool
	webpAnimated    lazyBool
	bot             lazyBool
	mobileUserAgent lazyBool
	preload         lazyBool

	screenKnown  lazyBool
	screenWidth  int
	screenHeight int

	deviceTypeKnown lazyBool
	deviceType      useragent.DeviceType

	clientKnown lazyBool
	client      string

	webpQualities []int
	jpegQualities []int
}

// New returns an empty classifier bound to m. m must outlive it.
func New(m Matcher) *Properties {
	return &Properties{matcher: m}
}

// SetUserAgent stores ua and forgets every UA-derived answer.
func (p *Properties) SetUserAgent(ua string) {
	p.userAgent = ua
	p.imageInlining = unknown
	p.lazyloadImages = unknown
	p.criticalCSS = unknown
	p.imagesBeacon = unknown
	p.jsDefer = unknown
	p.splitHTML = unknown
	p.acceptsWebp = unknown
	p.webpRewritten = unknown
	p.webpAlpha = unknown
	p.webpAnimated = unknown
	p.bot = unknown
	p.mobileUserAgent = unknown
	p.preload = unknown
	p.screenKnown = unknown
	p.screenWidth, p.screenHeight = 0, 0
	p.deviceTypeKnown = unknown
	p.deviceType = useragent.DeviceDesktop
	p.clientKnown = unknown
	p.client = ""
}

// UserAgent returns the string passed to SetUserAgent.
func (p *Properties) UserAgent() string { return p.userAgent }

// Client returns a short label for the client, e.g. "Chrome/120 (ios, mobile)".
func (p *Properties) Client() string {
	p.clientKnown.resolve(func() bool {
		p.client = p.matcher.Describe(p.userAgent)
		return true
	})
	return p.client
}

// ParseRequestHeaders records the Accept header. Only the Accept-derived
// WebP answers are forgotten; UA-derived answers are kept. A nil source is
// ignored.
func (p *Properties) ParseRequestHeaders(h HeaderSource) {
	if h == nil {
		return
	}
	p.acceptHeader = h.Get("Accept")
	p.acceptsWebp = unknown
	p.webpRewritten = unknown
}

// SupportsImageInlining reports whether images may be inlined as data: URLs.
func (p *Properties) SupportsImageInlining() bool {
	return p.imageInlining.resolve(func() bool { return p.matcher.SupportsImageInlining(p.userAgent) })
}

// SupportsLazyloadImages reports whether below-the-fold images may be loaded by script.
func (p *Properties) SupportsLazyloadImages() bool {
	return p.lazyloadImages.resolve(func() bool { return p.matcher.SupportsLazyloadImages(p.userAgent) })
}

// SupportsCriticalCSS reports whether critical CSS may be inlined with the rest deferred.
func (p *Properties) SupportsCriticalCSS() bool {
	return p.criticalCSS.resolve(func() bool { return p.matcher.SupportsCriticalCSS(p.userAgent) })
}

// SupportsCriticalImagesBeacon reports whether the page may report its above-the-fold images.
func (p *Properties) SupportsCriticalImagesBeacon() bool {
	return p.imagesBeacon.resolve(func() bool { return p.matcher.SupportsCriticalImagesBeacon(p.userAgent) })
}

// SupportsJSDefer reports whether deferred script execution is safe. The
// answer is cached once per request, so enableMobile from the first call wins.
func (p *Properties) SupportsJSDefer(enableMobile bool) bool {
	return p.jsDefer.resolve(func() bool { return p.matcher.SupportsJSDefer(p.userAgent, enableMobile) })
}

// SupportsSplitHTML behaves like SupportsJSDefer with its own cache cell.
func (p *Properties) SupportsSplitHTML(enableMobile bool) bool {
	return p.splitHTML.resolve(func() bool { return p.matcher.SupportsSplitHTML(p.userAgent, enableMobile) })
}

// SupportsWebpLosslessAlpha reports lossless and alpha-channel WebP decoding.
func (p *Properties) SupportsWebpLosslessAlpha() bool {
	return p.webpAlpha.resolve(func() bool { return p.matcher.SupportsWebpLosslessAlpha(p.userAgent) })
}

// SupportsWebpAnimated reports animated WebP decoding.
func (p *Properties) SupportsWebpAnimated() bool {
	return p.webpAnimated.resolve(func() bool { return p.matcher.SupportsWebpAnimated(p.userAgent) })
}

// IsBot reports crawlers and other automated clients.
func (p *Properties) IsBot() bool {
	return p.bot.resolve(func() bool { return p.matcher.IsBot(p.userAgent) })
}

// IsMobileUserAgent reports phones and tablets.
func (p *Properties) IsMobileUserAgent() bool {
	return p.mobileUserAgent.resolve(func() bool { return p.matcher.IsMobileUserAgent(p.userAgent) })
}

// CanPreloadResources reports <link rel=preload> support.
func (p *Properties) CanPreloadResources() bool {
	return p.preload.resolve(func() bool { return p.matcher.CanPreloadResources(p.userAgent) })
}

// AcceptsWebp reports whether the Accept header lists image/webp.
func (p *Properties) AcceptsWebp() bool {
	return p.acceptsWebp.resolve(func() bool {
		return strings.Contains(strings.ToLower(p.acceptHeader), webpMimeType)
	})
}

// SupportsWebpInPlace reports whether WebP may be served under the original
// URL, relying on a Vary: Accept response header.
func (p *Properties) SupportsWebpInPlace() bool {
	return p.AcceptsWebp()
}

// SupportsWebpRewrittenURLs reports whether WebP may be served under a new
// URL. Rewritten URLs cannot rely on Vary, so a UA carrying a Chrome token
// without a complete Chrome version is refused even when WebP is otherwise
// indicated.
func (p *Properties) SupportsWebpRewrittenURLs() bool {
	return p.webpRewritten.resolve(func() bool {
		if !p.AcceptsWebp() && !p.matcher.SupportsWebp(p.userAgent) {
			return false
		}
		return !p.possiblyMasqueradingAsChrome()
	})
}

func (p *Properties) possiblyMasqueradingAsChrome() bool {
	if !p.matcher.HasChromeToken(p.userAgent) {
		return false
	}
	_, _, ok := p.matcher.ChromeBuildAndPatch(p.userAgent)
	return !ok
}

// ForbidWebpInlining reports that WebP images must not be inlined: the
// client is unidentified, a bot, unable to inline images, or not a safe
// WebP consumer.
func (p *Properties) ForbidWebpInlining() bool {
	return p.userAgent == "" ||
		p.IsBot() ||
		!p.SupportsImageInlining() ||
		!p.SupportsWebpRewrittenURLs()
}

// ScreenResolution returns the client's screen size. ok is false when the
// matcher cannot determine it; width and height are then zero.
func (p *Properties) ScreenResolution() (width, height int, ok bool) {
	known := p.screenKnown.resolve(func() bool {
		w, h, ok := p.matcher.ScreenResolution(p.userAgent)
		if ok {
			p.screenWidth, p.screenHeight = w, h
		}
		return ok
	})
	if !known {
		return 0, 0, false
	}
	return p.screenWidth, p.screenHeight, true
}

// DeviceType returns the client's form factor, cached per request.
func (p *Properties) DeviceType() useragent.DeviceType {
	p.deviceTypeKnown.resolve(func() bool {
		p.deviceType = p.matcher.DeviceType(p.userAgent)
		return true
	})
	return p.deviceType
}

// IsMobile reports a phone form factor.
func (p *Properties) IsMobile() bool { return p.DeviceType() == useragent.DeviceMobile }

// IsTablet reports a tablet form factor.
func (p *Properties) IsTablet() bool { return p.DeviceType() == useragent.DeviceTablet }
