package useragent

// Matcher answers capability questions keyed solely on the UA string.
// It holds no mutable state after construction and is safe for concurrent use.
type Matcher struct {
	screens []ScreenRule
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithScreenRules replaces the built-in screen table.
// Invalid rules are dropped; patterns are matched case-insensitively.
func WithScreenRules(rules ...ScreenRule) Option {
	return func(m *Matcher) {
		m.screens = normalizeScreenRules(rules)
	}
}

// NewMatcher returns a Matcher using DefaultScreenRules unless overridden.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{screens: normalizeScreenRules(DefaultScreenRules)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// parse ignores the parser's error: an unrecognized UA still yields a value
// whose rules answer conservatively.
func parse(ua string) UserAgent {
	info, _ := Parse(ua)
	return info
}

// Describe returns a short client label for logs and diagnostics.
func (m *Matcher) Describe(ua string) string { return parse(ua).GetShortIdentifier() }

// IsBot reports crawlers and other automated clients.
func (m *Matcher) IsBot(ua string) bool { return parse(ua).IsBot() }

// DeviceType returns the form factor; unrecognized clients are desktops.
func (m *Matcher) DeviceType(ua string) DeviceType { return parse(ua).DeviceType() }

// IsMobileUserAgent reports phones and tablets, the clients that take the
// mobile-specific path for script rewriting.
func (m *Matcher) IsMobileUserAgent(ua string) bool { return parse(ua).isMobileUserAgent() }

// ScreenResolution returns the screen size declared by the device model in
// the UA. Clients without a known model token report ok=false.
func (m *Matcher) ScreenResolution(ua string) (width, height int, ok bool) {
	return lookupScreen(m.screens, parse(ua).lower)
}

// SupportsWebp reports lossy WebP decoding.
func (m *Matcher) SupportsWebp(ua string) bool { return parse(ua).supportsWebp() }

// SupportsWebpLosslessAlpha reports lossless and alpha-channel WebP decoding.
func (m *Matcher) SupportsWebpLosslessAlpha(ua string) bool {
	return parse(ua).supportsWebpLosslessAlpha()
}

// SupportsWebpAnimated reports animated WebP decoding.
func (m *Matcher) SupportsWebpAnimated(ua string) bool { return parse(ua).supportsWebpAnimated() }

// SupportsImageInlining reports data: URL images.
func (m *Matcher) SupportsImageInlining(ua string) bool { return parse(ua).supportsImageInlining() }

// SupportsLazyloadImages reports script-driven image lazy-loading.
func (m *Matcher) SupportsLazyloadImages(ua string) bool {
	return parse(ua).supportsLazyloadImages()
}

// SupportsCriticalCSS reports inlined critical CSS with deferred stylesheets.
func (m *Matcher) SupportsCriticalCSS(ua string) bool { return parse(ua).supportsCriticalCSS() }

// SupportsCriticalImagesBeacon reports the client-side critical images beacon.
func (m *Matcher) SupportsCriticalImagesBeacon(ua string) bool {
	return parse(ua).supportsCriticalImagesBeacon()
}

// SupportsJSDefer reports whether deferred script execution is safe. Mobile
// clients qualify only when allowMobile is set.
func (m *Matcher) SupportsJSDefer(ua string, allowMobile bool) bool {
	return parse(ua).supportsJSDefer(allowMobile)
}

// SupportsSplitHTML follows SupportsJSDefer and excludes engines that cannot
// stitch a split document back together.
func (m *Matcher) SupportsSplitHTML(ua string, allowMobile bool) bool {
	return parse(ua).supportsSplitHTML(allowMobile)
}

// CanPreloadResources reports <link rel=preload> support.
func (m *Matcher) CanPreloadResources(ua string) bool { return parse(ua).canPreloadResources() }

// HasChromeToken reports a case-sensitive "Chrome/" token.
func (m *Matcher) HasChromeToken(ua string) bool { return HasChromeToken(ua) }

// ChromeBuildAndPatch extracts the build and patch of a full Chrome version.
func (m *Matcher) ChromeBuildAndPatch(ua string) (build, patch int, ok bool) {
	return ChromeBuildAndPatch(ua)
}

// profile is every fact the Matcher can produce for one UA, computed from a
// single parse. Profiles are immutable once built.
type profile struct {
	client          string
	bot             bool
	mobileUA        bool
	deviceType      DeviceType
	screenWidth     int
	screenHeight    int
	screenKnown     bool
	webp            bool
	webpAlpha       bool
	webpAnimated    bool
	imageInlining   bool
	lazyload        bool
	criticalCSS     bool
	imagesBeacon    bool
	jsDefer         bool
	jsDeferMobile   bool
	splitHTML       bool
	splitHTMLMobile bool
	preload         bool
	chromeToken     bool
	chromeBuild     int
	chromePatch     int
	chromeComplete  bool
}

func (m *Matcher) profile(ua string) profile {
	info := parse(ua)
	p := profile{
		client:          info.GetShortIdentifier(),
		bot:             info.IsBot(),
		mobileUA:        info.isMobileUserAgent(),
		deviceType:      info.DeviceType(),
		webp:            info.supportsWebp(),
		webpAlpha:       info.supportsWebpLosslessAlpha(),
		webpAnimated:    info.supportsWebpAnimated(),
		imageInlining:   info.supportsImageInlining(),
		lazyload:        info.supportsLazyloadImages(),
		criticalCSS:     info.supportsCriticalCSS(),
		imagesBeacon:    info.supportsCriticalImagesBeacon(),
		jsDefer:         info.supportsJSDefer(false),
		jsDeferMobile:   info.supportsJSDefer(true),
		splitHTML:       info.supportsSplitHTML(false),
		splitHTMLMobile: info.supportsSplitHTML(true),
		preload:         info.canPreloadResources(),
		chromeToken:     HasChromeToken(ua),
	}
	p.screenWidth, p.screenHeight, p.screenKnown = lookupScreen(m.screens, info.lower)
	p.chromeBuild, p.chromePatch, p.chromeComplete = ChromeBuildAndPatch(ua)
	return p
}
