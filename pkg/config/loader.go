package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/logging"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. CROSSPATH_DISPLAY_MAX_CHARS
	EnvPrefix = "CROSSPATH_"

	appName        = "crosspath"
	configFileName = "config.toml"

	// minMaxChars is the narrowest width ShortString can render
	minMaxChars = 4
)

// Config holds the crosspath settings
type Config struct {
	Display Display                   `koanf:"display" toml:"display" yaml:"display" json:"display"`
	Paths   map[string]crosspath.Path `koanf:"paths" toml:"paths" yaml:"paths" json:"paths"`
}

// Display holds output settings
type Display struct {
	// MaxChars is the default width for shortened paths
	MaxChars int `koanf:"max_chars" toml:"max_chars" yaml:"max_chars" json:"max_chars"`
	// Format is the default output format name
	Format string `koanf:"format" toml:"format" yaml:"format" json:"format"`
}

// Bookmark returns the path stored under name
func (c *Config) Bookmark(name string) (crosspath.Path, error) {
	p, ok := c.Paths[name]
	if !ok {
		return crosspath.Path{}, errors.Newf(errors.ErrInvalidInput, "unknown bookmark: %s", name).
			WithDetail("bookmark", name)
	}
	return p, nil
}

// BookmarkNames returns the bookmark names in sorted order
func (c *Config) BookmarkNames() []string {
	names := make([]string, 0, len(c.Paths))
	for name := range c.Paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPath returns the location of the user configuration file
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, appName, configFileName)
}

// Default returns the embedded defaults without reading files or the
// environment.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load reads the configuration. An explicit path must exist; when path is
// empty the file at DefaultPath is used if present.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the config file
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		logger.Debug().Str("path", path).Msg("Loading config file")
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailNative, path)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail(errors.DetailNative, path)
	} else {
		logger.Trace().Str("path", path).Msg("No config file")
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// envKey maps CROSSPATH_DISPLAY_MAX_CHARS to display.max_chars. Only the
// first underscore separates the section so keys may contain underscores.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Display.MaxChars < minMaxChars {
		return errors.Newf(errors.ErrConfigParse, "display.max_chars must be at least %d, got %d",
			minMaxChars, cfg.Display.MaxChars)
	}
	if cfg.Paths == nil {
		cfg.Paths = map[string]crosspath.Path{}
	}
	return nil
}
