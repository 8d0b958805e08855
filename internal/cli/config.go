package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "MEMBERS"

var ErrInvalidSortOrder = errors.New("sort must be one of: none, asc, desc")

// Config is resolved from flags, MEMBERS_* environment variables and an
// optional config file, in that order of precedence.
type Config struct {
	Strict   bool   `mapstructure:"strict"`
	Unique   bool   `mapstructure:"unique"`
	Sort     string `mapstructure:"sort"`
	LogLevel string `mapstructure:"log-level"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("strict", true)
	v.SetDefault("unique", false)
	v.SetDefault("sort", "none")
	v.SetDefault("log-level", "info")

	return v
}

// readConfigFile loads path, or .members.yaml from the working directory
// when path is empty. A missing default file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".members")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "could not read config")
	}

	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "could not parse config")
	}

	cfg.Sort = strings.ToLower(strings.TrimSpace(cfg.Sort))
	switch cfg.Sort {
	case "", "none":
		cfg.Sort = "none"
	case "asc", "desc":
	default:
		return cfg, errors.Wrapf(ErrInvalidSortOrder, "got %q", cfg.Sort)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}
