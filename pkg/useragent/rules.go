package useragent

// Capability rules evaluated against a parsed UserAgent. Version gates follow
// the first stable release of each browser that shipped the feature.

// engine returns the family and major version the rules gate on. Every iOS
// browser renders with the system WebKit, so on iOS the OS release stands in
// for Safari's version whatever shell the user runs.
func (ua UserAgent) engine() (name string, major int) {
	if ua.os.Name == OSiOS && ua.os.Major > 0 && ua.recognized() {
		return BrowserSafari, ua.os.Major
	}
	return ua.browser.Name, ua.browser.Major
}

func (ua UserAgent) isMobileUserAgent() bool {
	return ua.category == CategoryMobile || ua.category == CategoryTablet
}

func (ua UserAgent) isOldIE(below int) bool {
	return ua.browser.Name == BrowserIE && ua.browser.Major < below
}

// isLimitedRenderer matches proxy browsers and legacy handsets that do not
// run page scripts reliably.
func (ua UserAgent) isLimitedRenderer() bool {
	return containsAny(ua.lower, "opera mini", "blackberry")
}

func (ua UserAgent) supportsWebp() bool {
	name, major := ua.engine()
	switch name {
	case BrowserChrome:
		return major >= 9
	case BrowserOpera:
		return major >= 11
	case BrowserEdge:
		return major >= 18
	case BrowserFirefox:
		return major >= 65
	case BrowserSafari:
		return major >= 14
	}
	return isChromiumFamily(name)
}

func (ua UserAgent) supportsWebpLosslessAlpha() bool {
	name, major := ua.engine()
	switch name {
	case BrowserChrome:
		return major >= 23
	case BrowserOpera:
		return major >= 12
	case BrowserEdge:
		return major >= 18
	case BrowserFirefox:
		return major >= 65
	case BrowserSafari:
		return major >= 14
	}
	return isChromiumFamily(name)
}

func (ua UserAgent) supportsWebpAnimated() bool {
	name, major := ua.engine()
	switch name {
	case BrowserChrome:
		return major >= 32
	case BrowserOpera:
		return major >= 19
	case BrowserEdge:
		return major >= 18
	case BrowserFirefox:
		return major >= 65
	case BrowserSafari:
		return major >= 16
	}
	return isChromiumFamily(name)
}

func (ua UserAgent) supportsImageInlining() bool {
	return ua.recognized() && !ua.isOldIE(8)
}

func (ua UserAgent) supportsLazyloadImages() bool {
	return ua.recognized() && !ua.IsBot() && !ua.isOldIE(9) && !ua.isLimitedRenderer()
}

func (ua UserAgent) supportsCriticalCSS() bool {
	return ua.recognized() && !ua.isOldIE(9)
}

func (ua UserAgent) supportsCriticalImagesBeacon() bool {
	return ua.supportsLazyloadImages()
}

// scriptCapableOnMobile lists the engines whose mobile builds tolerate
// deferred and split-document script execution.
func (ua UserAgent) scriptCapableOnMobile() bool {
	switch ua.browser.Name {
	case BrowserChrome, BrowserSafari, BrowserFirefox, BrowserEdge, BrowserOpera:
		return !ua.isLimitedRenderer()
	}
	return isChromiumFamily(ua.browser.Name)
}

func (ua UserAgent) supportsJSDefer(allowMobile bool) bool {
	if ua.IsBot() || !ua.recognized() {
		return false
	}
	if ua.isMobileUserAgent() {
		return allowMobile && ua.scriptCapableOnMobile()
	}
	return !ua.isOldIE(10)
}

func (ua UserAgent) supportsSplitHTML(allowMobile bool) bool {
	if !ua.supportsJSDefer(allowMobile) {
		return false
	}
	return !(ua.browser.Name == BrowserFirefox && ua.browser.Major < 50)
}

func (ua UserAgent) canPreloadResources() bool {
	name, major := ua.engine()
	switch name {
	case BrowserChrome:
		return major >= 50
	case BrowserEdge:
		return major >= 79
	case BrowserOpera:
		return major >= 37
	case BrowserSafari:
		return major >= 12
	case BrowserFirefox:
		return major >= 85
	}
	return isChromiumFamily(name)
}
