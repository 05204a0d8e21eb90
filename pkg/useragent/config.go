package useragent

import (
	"errors"

	"github.com/dmitrymomot/devicecaps/pkg/config"
)

// Config controls how the shared matcher is built.
type Config struct {
	CacheSize       int    `env:"USERAGENT_CACHE_SIZE" envDefault:"4096"`
	ScreenTablePath string `env:"USERAGENT_SCREEN_TABLE"`
}

// NewFromConfig builds a CachingMatcher. When ScreenTablePath is set, the YAML
// table at that path replaces DefaultScreenRules.
func NewFromConfig(cfg Config) (*CachingMatcher, error) {
	var opts []Option
	if cfg.ScreenTablePath != "" {
		var table ScreenTable
		if err := config.LoadYAML(cfg.ScreenTablePath, &table); err != nil {
			return nil, err
		}
		if err := table.Validate(); err != nil {
			return nil, err
		}
		if len(table.Screens) == 0 {
			return nil, errors.Join(ErrInvalidScreenRule, errors.New("screen table is empty"))
		}
		opts = append(opts, WithScreenRules(table.Screens...))
	}
	return NewCachingMatcher(NewMatcher(opts...), cfg.CacheSize), nil
}
