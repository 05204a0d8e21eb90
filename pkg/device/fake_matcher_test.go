package device_test

import (
	"github.com/dmitrymomot/devicecaps/pkg/useragent"
)

// fakeMatcher returns canned answers and counts calls per method.
type fakeMatcher struct {
	bot, mobileUA, webp, alpha, animated     bool
	inlining, lazyload, criticalCSS, beacon  bool
	jsDefer, jsDeferMobile                   bool
	splitHTML, splitHTMLMobile, preload      bool
	chromeToken, chromeComplete, screenKnown bool

	client                   string
	deviceType               useragent.DeviceType
	width, height            int
	chromeBuild, chromePatch int

	calls map[string]int
}

func newFake() *fakeMatcher {
	return &fakeMatcher{calls: map[string]int{}}
}

func (f *fakeMatcher) hit(name string) { f.calls[name]++ }

func (f *fakeMatcher) Describe(string) string { f.hit("Describe"); return f.client }

func (f *fakeMatcher) IsBot(string) bool { f.hit("IsBot"); return f.bot }

func (f *fakeMatcher) DeviceType(string) useragent.DeviceType {
	f.hit("DeviceType")
	return f.deviceType
}

func (f *fakeMatcher) IsMobileUserAgent(string) bool {
	f.hit("IsMobileUserAgent")
	return f.mobileUA
}

func (f *fakeMatcher) ScreenResolution(string) (int, int, bool) {
	f.hit("ScreenResolution")
	return f.width, f.height, f.screenKnown
}

func (f *fakeMatcher) SupportsWebp(string) bool { f.hit("SupportsWebp"); return f.webp }

func (f *fakeMatcher) SupportsWebpLosslessAlpha(string) bool {
	f.hit("SupportsWebpLosslessAlpha")
	return f.alpha
}

func (f *fakeMatcher) SupportsWebpAnimated(string) bool {
	f.hit("SupportsWebpAnimated")
	return f.animated
}

func (f *fakeMatcher) SupportsImageInlining(string) bool {
	f.hit("SupportsImageInlining")
	return f.inlining
}

func (f *fakeMatcher) SupportsLazyloadImages(string) bool {
	f.hit("SupportsLazyloadImages")
	return f.lazyload
}

func (f *fakeMatcher) SupportsCriticalCSS(string) bool {
	f.hit("SupportsCriticalCSS")
	return f.criticalCSS
}

func (f *fakeMatcher) SupportsCriticalImagesBeacon(string) bool {
	f.hit("SupportsCriticalImagesBeacon")
	return f.beacon
}

func (f *fakeMatcher) SupportsJSDefer(_ string, allowMobile bool) bool {
	f.hit("SupportsJSDefer")
	if allowMobile {
		return f.jsDeferMobile
	}
	return f.jsDefer
}

func (f *fakeMatcher) SupportsSplitHTML(_ string, allowMobile bool) bool {
	f.hit("SupportsSplitHTML")
	if allowMobile {
		return f.splitHTMLMobile
	}
	return f.splitHTML
}

func (f *fakeMatcher) CanPreloadResources(string) bool {
	f.hit("CanPreloadResources")
	return f.preload
}

func (f *fakeMatcher) HasChromeToken(string) bool {
	f.hit("HasChromeToken")
	return f.chromeToken
}

func (f *fakeMatcher) ChromeBuildAndPatch(string) (int, int, bool) {
	f.hit("ChromeBuildAndPatch")
	return f.chromeBuild, f.chromePatch, f.chromeComplete
}
