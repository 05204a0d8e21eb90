package device

import "github.com/dmitrymomot/devicecaps/pkg/useragent"

// Matcher answers primitive capability questions keyed on the UA string.
// Implementations must be safe for concurrent use; Properties never mutates
// them. Both *useragent.Matcher and *useragent.CachingMatcher satisfy it.
type Matcher interface {
	Describe(ua string) string
	IsBot(ua string) bool
	DeviceType(ua string) useragent.DeviceType
	IsMobileUserAgent(ua string) bool
	ScreenResolution(ua string) (width, height int, ok bool)
	SupportsWebp(ua string) bool
	SupportsWebpLosslessAlpha(ua string) bool
	SupportsWebpAnimated(ua string) bool
	SupportsImageInlining(ua string) bool
	SupportsLazyloadImages(ua string) bool
	SupportsCriticalCSS(ua string) bool
	SupportsCriticalImagesBeacon(ua string) bool
	SupportsJSDefer(ua string, allowMobile bool) bool
	SupportsSplitHTML(ua string, allowMobile bool) bool
	CanPreloadResources(ua string) bool
	HasChromeToken(ua string) bool
	ChromeBuildAndPatch(ua string) (build, patch int, ok bool)
}

// HeaderSource looks up a request header by name. An empty result means the
// header is absent. http.Header satisfies it.
type HeaderSource interface {
	Get(name string) string
}

// Device types re-exported for callers that only import this package.
const (
	Desktop = useragent.DeviceDesktop
	Mobile  = useragent.DeviceMobile
	Tablet  = useragent.DeviceTablet
)

var (
	_ Matcher = (*useragent.Matcher)(nil)
	_ Matcher = (*useragent.CachingMatcher)(nil)
)
