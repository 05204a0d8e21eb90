package device

// ImageQualityPreference indexes the preferred image quality tables.
type ImageQualityPreference int

const (
	QualityDefault ImageQualityPreference = iota
	QualityLow
	QualityMedium
	QualityHigh
)

// PreferredImageQualityCount is the number of recognized preference levels.
const PreferredImageQualityCount = 4

func (q ImageQualityPreference) String() string {
	switch q {
	case QualityDefault:
		return "default"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SetPreferredImageQualities stores copies of the WebP and JPEG quality
// tables indexed by ImageQualityPreference. A nil slice leaves that table
// unset; later changes to the arguments are not observed.
func (p *Properties) SetPreferredImageQualities(webp, jpeg []int) {
	p.webpQualities = cloneInts(webp)
	p.jpegQualities = cloneInts(jpeg)
}

// HasPreferredImageQualities reports whether both tables are set.
func (p *Properties) HasPreferredImageQualities() bool {
	return p.webpQualities != nil && p.jpegQualities != nil
}

// PreferredImageQualities returns the qualities configured for level.
// ok is false when either table is unset, level is out of range for either
// table, or either stored value is non-positive.
func (p *Properties) PreferredImageQualities(level ImageQualityPreference) (webp, jpeg int, ok bool) {
	if !p.HasPreferredImageQualities() {
		return 0, 0, false
	}
	i := int(level)
	if i < 0 || i >= len(p.webpQualities) || i >= len(p.jpegQualities) {
		return 0, 0, false
	}
	w, j := p.webpQualities[i], p.jpegQualities[i]
	if w <= 0 || j <= 0 {
		return 0, 0, false
	}
	return w, j, true
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append(make([]int, 0, len(s)), s...)
}
