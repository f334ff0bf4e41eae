package config

import (
	"bytes"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/errors"
)

const generatedHeader = `# crosspath configuration
# Generated by "crosspath config init". Environment variables prefixed with
# CROSSPATH_ override these values.

`

// Generate writes cfg as a TOML configuration file to w
func Generate(w io.Writer, cfg *Config) error {
	if _, err := io.WriteString(w, generatedHeader); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write config header")
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to encode configuration")
	}
	return nil
}

// GenerateDefault renders the default configuration
func GenerateDefault() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Generate(&buf, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteDefault writes the default configuration to p through ops. An
// existing file is only replaced when force is set.
func WriteDefault(ops *crosspath.FileOps, p crosspath.Path, force bool) error {
	if !force && ops.Exists(p) {
		return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", p).
			WithDetail(errors.DetailPath, p.String())
	}
	content, err := GenerateDefault()
	if err != nil {
		return err
	}
	return ops.WriteStrToFile(p, content)
}
