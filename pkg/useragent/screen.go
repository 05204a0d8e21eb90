package useragent

import (
	"errors"
	"fmt"
	"strings"
)

// ScreenRule maps a device model token found in the UA to the physical
// screen resolution of that device.
type ScreenRule struct {
	Pattern string `yaml:"pattern"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// Validate reports whether the rule can be used for matching.
func (r ScreenRule) Validate() error {
	if strings.TrimSpace(r.Pattern) == "" {
		return errors.Join(ErrInvalidScreenRule, errors.New("empty pattern"))
	}
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Join(ErrInvalidScreenRule,
			fmt.Errorf("pattern %q: dimensions must be positive, got %dx%d", r.Pattern, r.Width, r.Height))
	}
	return nil
}

// ScreenTable is the on-disk form of a screen rule set.
//
//	screens:
//	  - pattern: "pixel 7"
//	    width: 1080
//	    height: 2400
type ScreenTable struct {
	Screens []ScreenRule `yaml:"screens"`
}

// Validate checks every rule and joins all failures.
func (t ScreenTable) Validate() error {
	var errs []error
	for _, r := range t.Screens {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultScreenRules covers popular handsets and tablets whose UA carries a
// stable model token. Desktop browsers never declare a screen size.
var DefaultScreenRules = []ScreenRule{
	{Pattern: "pixel 7", Width: 1080, Height: 2400},
	{Pattern: "pixel 5", Width: 1080, Height: 2340},
	{Pattern: "nexus 5", Width: 1080, Height: 1920},
	{Pattern: "nexus 7", Width: 1200, Height: 1920},
	{Pattern: "nexus 10", Width: 1600, Height: 2560},
	{Pattern: "sm-g991b", Width: 1080, Height: 2400},
	{Pattern: "sm-g998b", Width: 1440, Height: 3200},
	{Pattern: "sm-t500", Width: 1200, Height: 2000},
	{Pattern: "kfjwi", Width: 1200, Height: 1920},
}

// normalizeScreenRules lower-cases patterns and drops rules that fail validation.
func normalizeScreenRules(rules []ScreenRule) []ScreenRule {
	out := make([]ScreenRule, 0, len(rules))
	for _, r := range rules {
		if r.Validate() != nil {
			continue
		}
		r.Pattern = strings.ToLower(strings.TrimSpace(r.Pattern))
		out = append(out, r)
	}
	return out
}

func lookupScreen(rules []ScreenRule, lowerUA string) (width, height int, ok bool) {
	if lowerUA == "" {
		return 0, 0, false
	}
	for _, r := range rules {
		if strings.Contains(lowerUA, r.Pattern) {
			return r.Width, r.Height, true
		}
	}
	return 0, 0, false
}
