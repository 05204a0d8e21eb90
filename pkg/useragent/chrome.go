package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

const chromeToken = "Chrome/"

var chromeBuildRegex = regexp.MustCompile(`Chrome/(\d+)\.(\d+)\.(\d+)\.(\d+)`)

// HasChromeToken reports whether the UA claims Chrome identity.
// The match is case-sensitive like the token real Chrome builds emit.
func HasChromeToken(ua string) bool {
	return strings.Contains(ua, chromeToken)
}

// ChromeBuildAndPatch extracts the build and patch components of a full
// Chrome/major.minor.build.patch token. Partial signatures report ok=false.
func ChromeBuildAndPatch(ua string) (build, patch int, ok bool) {
	m := chromeBuildRegex.FindStringSubmatch(ua)
	if len(m) != 5 {
		return 0, 0, false
	}
	build, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, false
	}
	patch, err = strconv.Atoi(m[4])
	if err != nil {
		return 0, 0, false
	}
	return build, patch, true
}
