package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "DESKS_"

// Config is the resolved desks configuration
type Config struct {
	Anchor  Anchor  `koanf:"anchor" json:"anchor" yaml:"anchor" toml:"anchor"`
	State   State   `koanf:"state" json:"state" yaml:"state" toml:"state"`
	Refresh Refresh `koanf:"refresh" json:"refresh" yaml:"refresh" toml:"refresh"`
	Output  Output  `koanf:"output" json:"output" yaml:"output" toml:"output"`

	// Source is the user file that was loaded, empty if none
	Source string `koanf:"-" json:"source,omitempty" yaml:"source,omitempty" toml:"-"`
}

// Anchor configures the redirected folder and the names derived from it
type Anchor struct {
	Path          string `koanf:"path" json:"path" yaml:"path" toml:"path"`
	TempSuffix    string `koanf:"temp_suffix" json:"tempSuffix" yaml:"tempSuffix" toml:"temp_suffix"`
	ParkingSuffix string `koanf:"parking_suffix" json:"parkingSuffix" yaml:"parkingSuffix" toml:"parking_suffix"`
}

// State configures where the binding is persisted
type State struct {
	File string `koanf:"file" json:"file" yaml:"file" toml:"file"`
}

// Refresh configures the desktop refresh notification
type Refresh struct {
	Enabled bool `koanf:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
}

// Output configures how results are printed
type Output struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format"`
}

// LoadOptions selects the user file and command line overrides
type LoadOptions struct {
	// ConfigFile is an explicit user file. It must exist when set.
	ConfigFile string
	// Overrides are dotted keys (anchor.path) applied last
	Overrides map[string]interface{}
}

// Load resolves the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	source, err := userConfigPath(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded user config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DESKS_ANCHOR_TEMP_SUFFIX to anchor.temp_suffix: the first
// underscore separates the section from the key
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func userConfigPath(explicit string) (string, error) {
	if explicit != "" {
		path := paths.ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	p, err := paths.New()
	if err != nil {
		return "", err
	}
	path := p.ConfigFilePath()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

func postProcess(cfg *Config) error {
	if cfg.Anchor.TempSuffix == "" {
		cfg.Anchor.TempSuffix = paths.DefaultTempSuffix
	}
	if cfg.Anchor.ParkingSuffix == "" {
		cfg.Anchor.ParkingSuffix = paths.DefaultParkingSuffix
	}
	if cfg.Anchor.TempSuffix == cfg.Anchor.ParkingSuffix {
		return errors.Newf(errors.ErrConfigLoad,
			"anchor.temp_suffix and anchor.parking_suffix must differ (both %q)", cfg.Anchor.TempSuffix)
	}
	for _, suffix := range []string{cfg.Anchor.TempSuffix, cfg.Anchor.ParkingSuffix} {
		if strings.ContainsAny(suffix, `/\`) {
			return errors.Newf(errors.ErrConfigLoad, "suffix %q must not contain a path separator", suffix)
		}
	}

	if cfg.State.File == "" {
		p, err := paths.New()
		if err != nil {
			return err
		}
		cfg.State.File = p.StateFilePath()
	} else {
		file, err := paths.ExpandPath(cfg.State.File)
		if err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "invalid state.file")
		}
		cfg.State.File = file
	}

	if cfg.Anchor.Path != "" {
		cfg.Anchor.Path = paths.ExpandHome(cfg.Anchor.Path)
	}
	return nil
}
