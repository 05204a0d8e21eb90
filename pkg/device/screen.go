package device

// Screen width thresholds separating the size buckets.
const (
	MediumScreenWidthThreshold = 720
	LargeScreenWidthThreshold  = 1500
)

// ScreenGroup is a coarse screen-width bucket.
type ScreenGroup int

const (
	ScreenSmall ScreenGroup = iota
	ScreenMedium
	ScreenLarge
)

func (g ScreenGroup) String() string {
	switch g {
	case ScreenSmall:
		return "small"
	case ScreenMedium:
		return "medium"
	case ScreenLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ScreenGroupIndex buckets a screen width. Negative widths report ok=false.
func ScreenGroupIndex(width int) (ScreenGroup, bool) {
	switch {
	case width < 0:
		return 0, false
	case width < MediumScreenWidthThreshold:
		return ScreenSmall, true
	case width < LargeScreenWidthThreshold:
		return ScreenMedium, true
	default:
		return ScreenLarge, true
	}
}
