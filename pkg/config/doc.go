// Package config loads application configuration from the environment and
// from YAML files.
//
// Environment parsing wraps `github.com/caarlos0/env/v11`; an optional `.env`
// file in the working directory is loaded through `github.com/joho/godotenv`
// before the first parse. Each configuration type is parsed once and cached
// for the lifetime of the process.
//
// YAML files (for rule tables such as the device screen table) are decoded
// with `gopkg.in/yaml.v3` in strict mode.
//
// # Usage
//
//	type DeviceConfig struct {
//	    WebpQualities []int `env:"DEVICE_WEBP_QUALITIES" envSeparator:","`
//	}
//
//	var cfg DeviceConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	var table useragent.ScreenTable
//	if err := config.LoadYAML("screens.yaml", &table); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrReadingFile or ErrNilPointer and can be matched with errors.Is.
//
// # Testing
//
// Call Reset between tests that modify the environment for the same type.
package config
