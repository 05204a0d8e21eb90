package useragent

import "strings"

// Browser is a browser family with its version as written in the UA and
// the leading major number of that version.
type Browser struct {
	Name    string
	Version string
	Major   int
}

// chromiumFamily lists browsers built on Blink that do not track Chrome's
// version number in their own token. Their capabilities follow Chrome's.
var chromiumFamily = map[string]struct{}{
	BrowserSamsung: {},
	BrowserUC:      {},
	BrowserQQ:      {},
	BrowserHuawei:  {},
	BrowserVivo:    {},
	BrowserMIUI:    {},
	BrowserYandex:  {},
	BrowserBrave:   {},
	BrowserVivaldi: {},
}

func isChromiumFamily(name string) bool {
	_, ok := chromiumFamily[name]
	return ok
}

type browserToken struct {
	token string
	name  string
}

// browserTokens is checked in order. Vendor tokens precede "chrome/" and
// "safari" because Blink and WebKit forks keep those tokens for
// compatibility. The iOS shells (crios, fxios, edgios) carry no "version/"
// token and are named after their desktop counterparts.
var browserTokens = []browserToken{
	{"edg/", BrowserEdge},
	{"edge/", BrowserEdge},
	{"edgios/", BrowserEdge},
	{"edga/", BrowserEdge},
	{"samsungbrowser/", BrowserSamsung},
	{"ucbrowser/", BrowserUC},
	{"qqbrowser/", BrowserQQ},
	{"huaweibrowser/", BrowserHuawei},
	{"vivobrowser/", BrowserVivo},
	{"miuibrowser/", BrowserMIUI},
	{"yabrowser/", BrowserYandex},
	{"vivaldi/", BrowserVivaldi},
	{"brave/", BrowserBrave},
	{"opr/", BrowserOpera},
	{"crios/", BrowserChrome},
	{"chrome/", BrowserChrome},
	{"fxios/", BrowserFirefox},
	{"firefox/", BrowserFirefox},
}

func newBrowser(name, version string) Browser {
	return Browser{Name: name, Version: version, Major: leadingInt(version)}
}

// ParseBrowser identifies the browser family of a lower-cased UA string.
func ParseBrowser(lowerUA string) Browser {
	// IE 11 dropped the "msie" token.
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		return newBrowser(BrowserIE, "11.0")
	}
	for _, t := range browserTokens {
		if strings.Contains(lowerUA, t.token) {
			return newBrowser(t.name, versionAfter(lowerUA, t.token))
		}
	}
	switch {
	case strings.Contains(lowerUA, "opera"):
		// Presto builds freeze "Opera/9.80" and report the real release in "Version/".
		if v := versionAfter(lowerUA, "version/"); v != "" {
			return newBrowser(BrowserOpera, v)
		}
		return newBrowser(BrowserOpera, versionAfter(lowerUA, "opera/"))
	case strings.Contains(lowerUA, "msie "):
		return newBrowser(BrowserIE, versionAfter(lowerUA, "msie "))
	case strings.Contains(lowerUA, "safari"):
		return newBrowser(BrowserSafari, versionAfter(lowerUA, "version/"))
	}
	return Browser{Name: BrowserUnknown}
}
