// Package config loads command defaults from flags, environment variables
// and an optional idgen.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Lzww0608/idgen/internal/log"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. IDGEN_NUM.
const EnvPrefix = "IDGEN"

// Config is the resolved command configuration.
type Config struct {
	Num  uint64     `mapstructure:"num"`
	Log  log.Config `mapstructure:"log"`
	UUID UUIDConfig `mapstructure:"uuid"`
}

// UUIDConfig holds defaults for the uuid subcommand.
type UUIDConfig struct {
	Version uint8 `mapstructure:"version"`
}

// Load resolves the configuration with the precedence
// flag > environment > config file > default. Only flags present in flags
// are bound; a nil set binds nothing.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName("idgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "idgen"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("num", 1)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
	v.SetDefault("uuid.version", 4)

	if flags != nil {
		for key, name := range map[string]string{
			"num":       "num",
			"log.level": "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
