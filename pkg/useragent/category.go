package useragent

import "strings"

var (
	botKeywords = []string{
		"bot", "spider", "crawler", "archiver", "slurp", "lighthouse", "daum", "sogou", "yeti",
		"facebookexternalhit", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord",
		"camo asset", "monitor", "validator", "fetcher", "scraper", "headlesschrome",
	}
	tvKeywords      = []string{"smarttv", "smart-tv", "appletv", "googletv", "android tv", "webos", "tizen", "hbbtv"}
	consoleKeywords = []string{"playstation", "xbox", "nintendo", "wiiu"}
	tabletKeywords  = []string{"tablet", "kindle", "silk", "kfjwi", "kftt"}
	mobileKeywords  = []string{"mobile", "windows phone", "iemobile", "blackberry", "opera mini", "nokia"}
	desktopKeywords = []string{"windows", "macintosh", "mac os x", "x11", "linux", "cros"}
)

// isBotUA matches crawler keywords outside the Android model field.
func isBotUA(lowerUA string) bool {
	return containsAny(withoutAndroidModel(lowerUA), botKeywords...)
}

// ParseCategory classifies the client behind a lower-cased UA string.
// Crawlers are recognized first; Android phones and tablets are split on
// the "mobile" token, which Android tablets omit.
func ParseCategory(lowerUA string) string {
	switch {
	case lowerUA == "":
		return CategoryUnknown
	case isBotUA(lowerUA):
		return CategoryBot
	case strings.Contains(lowerUA, "ipad"):
		return CategoryTablet
	case containsAny(lowerUA, "iphone", "ipod"):
		return CategoryMobile
	case containsAny(lowerUA, tvKeywords...):
		return CategoryTV
	case strings.Contains(lowerUA, "android"):
		if strings.Contains(lowerUA, "mobile") {
			return CategoryMobile
		}
		return CategoryTablet
	case containsAny(lowerUA, tabletKeywords...):
		return CategoryTablet
	case containsAny(lowerUA, mobileKeywords...):
		return CategoryMobile
	case containsAny(lowerUA, consoleKeywords...):
		return CategoryConsole
	case strings.Contains(lowerUA, "windows") && strings.Contains(lowerUA, "touch"):
		return CategoryTablet
	case containsAny(lowerUA, desktopKeywords...):
		return CategoryDesktop
	default:
		return CategoryUnknown
	}
}

// OS is an operating system family. Major is filled for iOS only, where
// every browser runs the system WebKit and capabilities follow the OS.
type OS struct {
	Name  string
	Major int
}

// ParseOS identifies the operating system of a lower-cased UA string.
func ParseOS(lowerUA string) OS {
	switch {
	case lowerUA == "":
		return OS{Name: OSUnknown}
	case strings.Contains(lowerUA, "windows phone"):
		return OS{Name: OSWindowsPhone}
	case strings.Contains(lowerUA, "windows"):
		return OS{Name: OSWindows}
	case containsAny(lowerUA, "iphone", "ipad", "ipod"):
		return OS{Name: OSiOS, Major: iOSMajor(lowerUA)}
	case containsAny(lowerUA, "macintosh", "mac os x"):
		return OS{Name: OSMacOS}
	case strings.Contains(lowerUA, "harmonyos"):
		return OS{Name: OSHarmonyOS}
	case strings.Contains(lowerUA, "android"):
		return OS{Name: OSAndroid}
	case containsAny(lowerUA, "kindle", "silk"):
		return OS{Name: OSFireOS}
	case containsAny(lowerUA, "cros", "chromeos"):
		return OS{Name: OSChromeOS}
	case containsAny(lowerUA, "linux", "x11"):
		return OS{Name: OSLinux}
	default:
		return OS{Name: OSUnknown}
	}
}

// iOSMajor reads the major version from "iphone os 17_0" or the iPad form
// "cpu os 16_1".
func iOSMajor(lowerUA string) int {
	for _, marker := range []string{"iphone os ", "cpu os "} {
		if i := strings.Index(lowerUA, marker); i >= 0 {
			return leadingInt(lowerUA[i+len(marker):])
		}
	}
	return 0
}
