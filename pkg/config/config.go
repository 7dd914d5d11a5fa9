package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kasuganosora/sqlhelpers/pkg/datetime"
	"github.com/kasuganosora/sqlhelpers/pkg/text"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: SQLHELPERS_FUNCTIONS__DATE_PATTERN sets functions.date_pattern.
const EnvPrefix = "SQLHELPERS_"

// EnvConfigPath names the variable holding an explicit config file path.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Config is the library configuration.
type Config struct {
	Functions Options   `koanf:"functions"`
	Log       LogConfig `koanf:"log"`
}

// Options are the defaults the function registry applies when a call omits
// an optional argument.
type Options struct {
	DatePattern          string `koanf:"date_pattern"`
	DateTimePattern      string `koanf:"datetime_pattern"`
	ConcatDelimiter      string `koanf:"concat_delimiter"`
	GroupConcatDelimiter string `koanf:"group_concat_delimiter"`
}

// LogConfig selects the registry logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or text
}

// DefaultOptions returns the documented helper defaults.
func DefaultOptions() Options {
	return Options{
		DatePattern:          datetime.DatePattern,
		DateTimePattern:      datetime.DateTimePattern,
		ConcatDelimiter:      "",
		GroupConcatDelimiter: text.DefaultGroupDelimiter,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Functions: DefaultOptions(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"functions.date_pattern":           d.Functions.DatePattern,
		"functions.datetime_pattern":       d.Functions.DateTimePattern,
		"functions.concat_delimiter":       d.Functions.ConcatDelimiter,
		"functions.group_concat_delimiter": d.Functions.GroupConcatDelimiter,
		"log.level":                        d.Log.Level,
		"log.format":                       d.Log.Format,
	}
}

// LoadConfig layers defaults, the YAML file at configPath (skipped when
// empty) and SQLHELPERS_ environment variables, then validates the result.
func LoadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, errors.Wrapf(err, "config file %s", configPath)
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps SQLHELPERS_LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// LoadConfigOrDefault loads the file named by SQLHELPERS_CONFIG, then the
// first of the usual locations that exists, falling back to defaults.
func LoadConfigOrDefault() *Config {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if cfg, err := LoadConfig(envPath); err == nil {
			return cfg
		}
	}

	for _, path := range []string{"sqlhelpers.yaml", "sqlhelpers.yml", "./config/sqlhelpers.yaml"} {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err != nil {
			continue
		}
		if cfg, err := LoadConfig(absPath); err == nil {
			return cfg
		}
	}

	return DefaultConfig()
}

func validateConfig(cfg *Config) error {
	datePattern, err := datetime.CompilePattern(cfg.Functions.DatePattern)
	if err != nil {
		return errors.Wrap(err, "functions.date_pattern")
	}
	if datePattern.UsesTime() {
		return errors.Newf("functions.date_pattern %q formats a time of day", cfg.Functions.DatePattern)
	}
	if _, err := datetime.CompilePattern(cfg.Functions.DateTimePattern); err != nil {
		return errors.Wrap(err, "functions.datetime_pattern")
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return errors.Newf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	return nil
}
