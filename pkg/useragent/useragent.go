package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent is the parsed form of a User-Agent header.
type UserAgent struct {
	lower    string
	category string
	os       OS
	browser  Browser
}

// DeviceType collapses the category into the form factor used for rewriting decisions.
func (ua UserAgent) DeviceType() DeviceType { return deviceTypeOf(ua.category) }

// IsBot reports crawlers, link unfurlers and headless clients.
func (ua UserAgent) IsBot() bool { return ua.category == CategoryBot }

// Parse classifies a UA string. The returned value is usable even when an
// error is reported.
func Parse(raw string) (UserAgent, error) {
	if raw == "" {
		return UserAgent{
			category: CategoryUnknown,
			os:       OS{Name: OSUnknown},
			browser:  Browser{Name: BrowserUnknown},
		}, ErrEmptyUserAgent
	}

	lower := strings.ToLower(raw)
	ua := UserAgent{
		lower:    lower,
		category: ParseCategory(lower),
		os:       ParseOS(lower),
		browser:  ParseBrowser(lower),
	}
	if ua.category == CategoryUnknown {
		if ua.os.Name == OSUnknown && !ua.recognized() {
			return ua, ErrMalformedUserAgent
		}
		return ua, ErrUnknownDevice
	}
	return ua, nil
}

// recognized reports whether the parser identified a browser family.
func (ua UserAgent) recognized() bool {
	return ua.browser.Name != "" && ua.browser.Name != BrowserUnknown
}

// botName returns the first product token that carries a crawler keyword,
// without its version, e.g. "Googlebot" or "Facebookexternalhit".
func botName(lowerUA string) string {
	fields := strings.FieldsFunc(withoutAndroidModel(lowerUA), func(r rune) bool {
		return r == ' ' || r == ';' || r == '(' || r == ')' || r == ','
	})
	for _, f := range fields {
		if strings.HasPrefix(f, "+http") || strings.HasPrefix(f, "http") {
			continue
		}
		name, _, _ := strings.Cut(f, "/")
		if name != "" && containsAny(name, botKeywords...) {
			return cases.Title(language.English).String(name)
		}
	}
	return "Unknown Bot"
}

// GetShortIdentifier returns a compact client description for logs, in the
// form "Chrome/120 (windows, desktop)" or "Bot: Googlebot".
func (ua UserAgent) GetShortIdentifier() string {
	if ua.IsBot() {
		return "Bot: " + botName(ua.lower)
	}

	osKnown := ua.os.Name != "" && ua.os.Name != OSUnknown
	if !ua.recognized() && !osKnown && ua.category == CategoryUnknown {
		return "Unknown device"
	}

	osName := "Unknown OS"
	if osKnown {
		osName = ua.os.Name
	}
	if !ua.recognized() {
		return fmt.Sprintf("%s %s", osName, ua.category)
	}

	version := "?"
	if ua.browser.Major > 0 {
		version = fmt.Sprint(ua.browser.Major)
	}
	return fmt.Sprintf("%s/%s (%s, %s)", cases.Title(language.English).String(ua.browser.Name), version, osName, ua.category)
}
