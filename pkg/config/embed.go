package config

import (
	_ "embed"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultContent returns the embedded default configuration, comments
// included
func DefaultContent() string {
	return string(defaultConfig)
}

// defaultsProvider feeds the embedded defaults to koanf. It only serves
// bytes, so it must be paired with a parser.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return defaultConfig, nil
}

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrConfigLoad, "embedded defaults must be read with a parser")
}
