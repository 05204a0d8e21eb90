package useragent

import "strings"

// containsAny reports whether s contains any of words.
func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// leadingInt parses the decimal digits at the start of s. It returns 0 when
// s does not start with a digit or the number is implausibly long.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s) && i < 6; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// versionAfter returns the dotted version that directly follows token in
// lowerUA, capped at 20 characters.
func versionAfter(lowerUA, token string) string {
	i := strings.Index(lowerUA, token)
	if i < 0 {
		return ""
	}
	rest := lowerUA[i+len(token):]
	end := 0
	for end < len(rest) && end < 20 && (rest[end] == '.' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	return rest[:end]
}

// withoutAndroidModel drops the free-form device model field that follows
// "android <version>;" so vendor names such as "CUBOT" cannot trip keyword
// checks meant for crawler product tokens.
func withoutAndroidModel(lowerUA string) string {
	i := strings.Index(lowerUA, "android")
	if i < 0 {
		return lowerUA
	}
	semi := strings.IndexByte(lowerUA[i:], ';')
	if semi < 0 {
		return lowerUA
	}
	start := i + semi
	end := strings.IndexByte(lowerUA[start:], ')')
	if end < 0 {
		return lowerUA[:start]
	}
	return lowerUA[:start] + lowerUA[start+end:]
}
