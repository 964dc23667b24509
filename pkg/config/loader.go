package config

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/fonts"
	"github.com/arthur-debert/figart/pkg/logging"
	"github.com/arthur-debert/figart/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: FIGART_OUTPUT__SEPARATOR_WIDTH sets output.separator_width.
const EnvPrefix = "FIGART_"

// LoadOptions tells Load where to look
type LoadOptions struct {
	// ConfigFile is an explicit config path. When set it must exist.
	ConfigFile string
	// Paths resolves the default config file and font dir. Nil means paths.New().
	Paths *paths.Paths
}

// Load merges defaults, the user config file and the environment.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.Load")
	p := opts.Paths
	if p == nil {
		p = paths.New()
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Defaults that depend on the environment
	computed := map[string]interface{}{"font.dir": p.FontsDir()}
	if err := k.Load(confmap.Provider(computed, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load computed defaults")
	}

	// 3. User config file
	path, err := userConfigPath(opts.ConfigFile, p)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Font.Dir == "" {
		cfg.Font.Dir = p.FontsDir()
	} else {
		cfg.Font.Dir = paths.ExpandHome(cfg.Font.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the embedded defaults with no user file or environment
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal defaults")
	}
	return &cfg, nil
}

func userConfigPath(explicit string, p *paths.Paths) (string, error) {
	if explicit != "" {
		explicit = paths.ExpandHome(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	if _, err := os.Stat(p.ConfigFile()); err == nil {
		return p.ConfigFile(), nil
	}
	return "", nil
}

// envKey maps FIGART_OUTPUT__SEPARATOR_WIDTH to output.separator_width
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks values that do not depend on the font catalog
func (c *Config) Validate() error {
	if c.Font.Default == "" {
		return errors.New(errors.ErrConfigValid, "font.default must not be empty")
	}
	if c.List.Count < 0 {
		return errors.Newf(errors.ErrConfigValid, "list.count must be >= 0, got %d", c.List.Count)
	}
	if c.Preview.Count < 0 {
		return errors.Newf(errors.ErrConfigValid, "preview.count must be >= 0, got %d", c.Preview.Count)
	}
	if utf8.RuneCountInString(c.Output.Separator) != 1 {
		return errors.Newf(errors.ErrConfigValid, "output.separator must be one character, got %q", c.Output.Separator)
	}
	if c.Output.SeparatorWidth < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.separator_width must be >= 0, got %d", c.Output.SeparatorWidth)
	}
	if c.Output.TimestampFormat == "" {
		return errors.New(errors.ErrConfigValid, "output.timestamp_format must not be empty")
	}
	return nil
}

// ValidateFonts checks that the configured default font is in catalog
func (c *Config) ValidateFonts(catalog *fonts.Catalog) error {
	if !catalog.Contains(c.Font.Default) {
		return errors.Newf(errors.ErrConfigValid, "font.default %q is not a known font", c.Font.Default).
			WithDetail("font", c.Font.Default)
	}
	return nil
}
