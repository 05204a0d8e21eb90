package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/devicecaps/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrowser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Browser
	}{
		{"chrome", chromeDesktopUA, useragent.Browser{Name: useragent.BrowserChrome, Version: "91.0.4472.124", Major: 91}},
		{"chromium edge wins over chrome token", edgeBrowserUA, useragent.Browser{Name: useragent.BrowserEdge, Version: "91.0.864.59", Major: 91}},
		{"samsung internet wins over chrome token", samsungBrowserUA, useragent.Browser{Name: useragent.BrowserSamsung, Version: "14.0", Major: 14}},
		{"uc browser", ucBrowserUA, useragent.Browser{Name: useragent.BrowserUC, Version: "13.4.0.1306", Major: 13}},
		{"safari reads version token", safariOldUA, useragent.Browser{Name: useragent.BrowserSafari, Version: "12.1.2", Major: 12}},
		{"chrome on ios", criosUA, useragent.Browser{Name: useragent.BrowserChrome, Version: "120.0.6099.119", Major: 120}},
		{"firefox on ios", fxiosUA, useragent.Browser{Name: useragent.BrowserFirefox, Version: "118.0", Major: 118}},
		{
			"edge on ios",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 EdgiOS/119.2151.65 Mobile/15E148 Safari/605.1.15",
			useragent.Browser{Name: useragent.BrowserEdge, Version: "119.2151.65", Major: 119},
		},
		{
			"presto opera reports release in version token",
			"Opera/9.80 (Windows NT 6.1; WOW64) Presto/2.12.388 Version/12.16",
			useragent.Browser{Name: useragent.BrowserOpera, Version: "12.16", Major: 12},
		},
		{"msie", ie7UA, useragent.Browser{Name: useragent.BrowserIE, Version: "7.0", Major: 7}},
		{
			"ie 11 without msie token",
			"Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko",
			useragent.Browser{Name: useragent.BrowserIE, Version: "11.0", Major: 11},
		},
		{"crawler", botUA, useragent.Browser{Name: useragent.BrowserUnknown}},
		{"empty", emptyUA, useragent.Browser{Name: useragent.BrowserUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseBrowser(strings.ToLower(tc.ua)))
		})
	}
}

func TestParseOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.OS
	}{
		{"windows", chromeDesktopUA, useragent.OS{Name: useragent.OSWindows}},
		{"macos", safariOldUA, useragent.OS{Name: useragent.OSMacOS}},
		{"iphone carries major", criosUA, useragent.OS{Name: useragent.OSiOS, Major: 17}},
		{
			"ipad carries major",
			"Mozilla/5.0 (iPad; CPU OS 16_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Mobile/15E148 Safari/604.1",
			useragent.OS{Name: useragent.OSiOS, Major: 16},
		},
		{"android", cubotUA, useragent.OS{Name: useragent.OSAndroid}},
		{
			"windows phone before android",
			"Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1; Microsoft; Lumia 950) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/52.0.2743.116 Mobile Safari/537.36 Edge/15.15063",
			useragent.OS{Name: useragent.OSWindowsPhone},
		},
		{
			"chromeos",
			"Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36",
			useragent.OS{Name: useragent.OSChromeOS},
		},
		{
			"linux",
			"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0",
			useragent.OS{Name: useragent.OSLinux},
		},
		{"crawler", botUA, useragent.OS{Name: useragent.OSUnknown}},
		{"empty", emptyUA, useragent.OS{Name: useragent.OSUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseOS(strings.ToLower(tc.ua)))
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"desktop", chromeDesktopUA, useragent.CategoryDesktop},
		{"iphone", safariMobileUA, useragent.CategoryMobile},
		{"android phone", pixel7UA, useragent.CategoryMobile},
		{"android tablet omits mobile token", androidTabletUA, useragent.CategoryTablet},
		{"vendor model containing bot", cubotUA, useragent.CategoryMobile},
		{"googlebot", botUA, useragent.CategoryBot},
		{"googlebot smartphone", googlebotMobUA, useragent.CategoryBot},
		{"link unfurler", "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", useragent.CategoryBot},
		{
			"headless chrome",
			"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0.0.0 Safari/537.36",
			useragent.CategoryBot,
		},
		{
			"smart tv",
			"Mozilla/5.0 (SMART-TV; Linux; Tizen 6.0) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/4.0 Chrome/76.0.3809.146 TV Safari/537.36",
			useragent.CategoryTV,
		},
		{"console", "Mozilla/5.0 (PlayStation; PlayStation 5/2.26) AppleWebKit/605.1.15 (KHTML, like Gecko)", useragent.CategoryConsole},
		{"garbage", "qwerty-123", useragent.CategoryUnknown},
		{"empty", emptyUA, useragent.CategoryUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseCategory(strings.ToLower(tc.ua)))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ua          string
		deviceType  useragent.DeviceType
		bot         bool
		expectedErr error
	}{
		{name: "desktop chrome", ua: chromeDesktopUA, deviceType: useragent.DeviceDesktop},
		{name: "iphone safari", ua: safariMobileUA, deviceType: useragent.DeviceMobile},
		{name: "android tablet", ua: androidTabletUA, deviceType: useragent.DeviceTablet},
		{name: "googlebot", ua: botUA, deviceType: useragent.DeviceDesktop, bot: true},
		{name: "empty", ua: emptyUA, deviceType: useragent.DeviceDesktop, expectedErr: useragent.ErrEmptyUserAgent},
		{name: "garbage", ua: "qwerty-123", deviceType: useragent.DeviceDesktop, expectedErr: useragent.ErrMalformedUserAgent},
		{
			name:        "browser without platform",
			ua:          "Mozilla/5.0 Firefox/118.0",
			deviceType:  useragent.DeviceDesktop,
			expectedErr: useragent.ErrUnknownDevice,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := useragent.Parse(tc.ua)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.deviceType, result.DeviceType())
			assert.Equal(t, tc.bot, result.IsBot())
		})
	}
}

func TestDeviceTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "desktop", useragent.DeviceDesktop.String())
	assert.Equal(t, "mobile", useragent.DeviceMobile.String())
	assert.Equal(t, "tablet", useragent.DeviceTablet.String())
}

func TestGetShortIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"chrome on windows", chromeDesktopUA, "Chrome/91 (windows, desktop)"},
		{"safari on iphone", safariMobileUA, "Safari/14 (ios, mobile)"},
		{"samsung internet", samsungBrowserUA, "Samsung/14 (android, mobile)"},
		{"googlebot", botUA, "Bot: Googlebot"},
		{"generic crawler", "Mozilla/5.0 (compatible; AcmeSpider/1.0)", "Bot: Acmespider"},
		{"empty", emptyUA, "Unknown device"},
		{"unknown browser on windows", "Mozilla/5.0 (Windows NT 10.0) Obscure/1.0", "windows desktop"},
		{"browser without version", "Mozilla/5.0 Firefox/", "Firefox/? (Unknown OS, unknown)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua, _ := useragent.Parse(tc.ua)
			assert.Equal(t, tc.expected, ua.GetShortIdentifier())
		})
	}
}
