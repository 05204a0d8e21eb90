package device

// Capabilities is a resolved view of every query on a Properties, suitable
// for JSON responses and log records.
type Capabilities struct {
	UserAgent  string `json:"user_agent"`
	Client     string `json:"client"`
	DeviceType string `json:"device_type"`
	IsBot      bool   `json:"is_bot"`
	IsMobileUA bool   `json:"is_mobile_user_agent"`

	Screen *Screen `json:"screen,omitempty"`

	ImageInlining        bool `json:"image_inlining"`
	LazyloadImages       bool `json:"lazyload_images"`
	CriticalCSS          bool `json:"critical_css"`
	CriticalImagesBeacon bool `json:"critical_images_beacon"`
	JSDefer              bool `json:"js_defer"`
	SplitHTML            bool `json:"split_html"`
	PreloadResources     bool `json:"preload_resources"`

	Webp Webp `json:"webp"`

	ImageQualities []ImageQuality `json:"image_qualities,omitempty"`
}

// Screen is a known screen size and its width bucket.
type Screen struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Group  string `json:"group"`
}

// Webp groups the WebP answers, including the Accept-derived ones.
type Webp struct {
	Accepted       bool `json:"accepted"`
	InPlace        bool `json:"in_place"`
	RewrittenURLs  bool `json:"rewritten_urls"`
	LosslessAlpha  bool `json:"lossless_alpha"`
	Animated       bool `json:"animated"`
	ForbidInlining bool `json:"forbid_inlining"`
}

// ImageQuality is one usable row of the preferred quality tables.
type ImageQuality struct {
	Level string `json:"level"`
	Webp  int    `json:"webp"`
	Jpeg  int    `json:"jpeg"`
}

// Snapshot resolves every query on p. enableMobile is passed to the
// mobile-sensitive queries; like them, it only takes effect if those cells
// are still unresolved.
func Snapshot(p *Properties, enableMobile bool) Capabilities {
	c := Capabilities{
		UserAgent:            p.UserAgent(),
		Client:               p.Client(),
		DeviceType:           p.DeviceType().String(),
		IsBot:                p.IsBot(),
		IsMobileUA:           p.IsMobileUserAgent(),
		ImageInlining:        p.SupportsImageInlining(),
		LazyloadImages:       p.SupportsLazyloadImages(),
		CriticalCSS:          p.SupportsCriticalCSS(),
		CriticalImagesBeacon: p.SupportsCriticalImagesBeacon(),
		JSDefer:              p.SupportsJSDefer(enableMobile),
		SplitHTML:            p.SupportsSplitHTML(enableMobile),
		PreloadResources:     p.CanPreloadResources(),
		Webp: Webp{
			Accepted:       p.AcceptsWebp(),
			InPlace:        p.SupportsWebpInPlace(),
			RewrittenURLs:  p.SupportsWebpRewrittenURLs(),
			LosslessAlpha:  p.SupportsWebpLosslessAlpha(),
			Animated:       p.SupportsWebpAnimated(),
			ForbidInlining: p.ForbidWebpInlining(),
		},
	}

	if w, h, ok := p.ScreenResolution(); ok {
		s := &Screen{Width: w, Height: h}
		if g, ok := ScreenGroupIndex(w); ok {
			s.Group = g.String()
		}
		c.Screen = s
	}

	for level := range ImageQualityPreference(PreferredImageQualityCount) {
		if webp, jpeg, ok := p.PreferredImageQualities(level); ok {
			c.ImageQualities = append(c.ImageQualities, ImageQuality{
				Level: level.String(),
				Webp:  webp,
				Jpeg:  jpeg,
			})
		}
	}

	return c
}
