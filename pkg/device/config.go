package device

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/devicecaps/pkg/config"
)

// Config holds request-classification settings read from the environment.
type Config struct {
	WebpQualities []int `env:"DEVICE_WEBP_QUALITIES" envSeparator:","`
	JpegQualities []int `env:"DEVICE_JPEG_QUALITIES" envSeparator:","`
	EnableMobile  bool  `env:"DEVICE_ENABLE_MOBILE" envDefault:"false"`
}

// LoadConfig reads Config through the shared env loader and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the quality tables are either both set or both
// empty and fit the preference levels.
func (c Config) Validate() error {
	var errs []error
	if (len(c.WebpQualities) == 0) != (len(c.JpegQualities) == 0) {
		errs = append(errs, errors.New("webp and jpeg quality tables must be set together"))
	}
	for name, table := range map[string][]int{"webp": c.WebpQualities, "jpeg": c.JpegQualities} {
		if len(table) > PreferredImageQualityCount {
			errs = append(errs, fmt.Errorf("%s quality table has %d entries, max %d", name, len(table), PreferredImageQualityCount))
		}
		for i, q := range table {
			if q > 100 {
				errs = append(errs, fmt.Errorf("%s quality at level %d is %d, max 100", name, i, q))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// MiddlewareOptions turns the configured tables into middleware options.
func (c Config) MiddlewareOptions() []MiddlewareOption {
	if len(c.WebpQualities) == 0 {
		return nil
	}
	return []MiddlewareOption{WithPreferredImageQualities(c.WebpQualities, c.JpegQualities)}
}
