package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML document at path into v. Unknown keys are
// rejected so that typos in rule tables surface at startup.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
