package useragent

// Client categories produced by ParseCategory. The capability rules
// collapse them into a DeviceType.
const (
	CategoryBot     = "bot"
	CategoryMobile  = "mobile"
	CategoryTablet  = "tablet"
	CategoryDesktop = "desktop"
	CategoryTV      = "tv"
	CategoryConsole = "console"
	CategoryUnknown = "unknown"
)

// Browser families. Chromium-based browsers that carry their own product
// token keep their own name; see isChromiumFamily.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserQQ      = "qq"
	BrowserHuawei  = "huawei"
	BrowserVivo    = "vivo"
	BrowserMIUI    = "miui"
	BrowserBrave   = "brave"
	BrowserVivaldi = "vivaldi"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

// Operating systems recognized by ParseOS.
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSHarmonyOS    = "harmonyos"
	OSFireOS       = "fireos"
	OSUnknown      = "unknown"
)

// DeviceType is the coarse form factor used by the rewriting pipeline.
// TVs, consoles, bots and unrecognized clients are treated as desktops.
type DeviceType int

const (
	DeviceDesktop DeviceType = iota
	DeviceMobile
	DeviceTablet
)

func (t DeviceType) String() string {
	switch t {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

func deviceTypeOf(category string) DeviceType {
	switch category {
	case CategoryMobile:
		return DeviceMobile
	case CategoryTablet:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}
