package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	dirservehttp "dirserve/http"
)

// Config is the root configuration struct for dirserve.
type Config struct {
	Server ServerConfig            `mapstructure:"server"`
	Serve  ServeConfig             `mapstructure:"serve"`
	CORS   dirservehttp.CORSConfig `mapstructure:"cors"`
	Log    LogConfig               `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// ServeConfig holds the serving root configuration.
type ServeConfig struct {
	Root string `mapstructure:"root" validate:"required"`
}

// LogConfig holds logging configuration. Format selects the handler: "text"
// is tinted, source-tagged output for interactive use, "json" is one JSON
// object per line for log shippers.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ValidateRoot checks that the configured serving root exists and is a
// directory. It runs at startup, before the server accepts requests.
func (c *Config) ValidateRoot() error {
	info, err := os.Stat(c.Serve.Root)
	if err != nil {
		return fmt.Errorf("serve root %s: %w", c.Serve.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("serve root %s is not a directory", c.Serve.Root)
	}
	return nil
}

// flagToViperKey maps the CLI flag names whose config key spells differently.
var flagToViperKey = map[string]string{
	"port": "server.port",
	"root": "serve.root",
}

// bindFlags binds explicitly-set CLI flags to their viper keys, so an unset
// flag's default never shadows a value from the environment or config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}

		key := f.Name
		if mapped, ok := flagToViperKey[key]; ok {
			key = mapped
		}
		_ = v.BindPFlag(key, f)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("serve.root", "./public")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// readFiles merges the given config files into v, first file as the base and
// later files overriding. With no files it falls back to ./config.yaml and
// treats its absence as normal.
func readFiles(v *viper.Viper, configFiles []string) {
	if len(configFiles) == 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
		return
	}

	v.SetConfigFile(configFiles[0])
	if err := v.ReadInConfig(); err != nil {
		slog.Warn("error reading config file", "file", configFiles[0], "err", err)
	}

	for _, cf := range configFiles[1:] {
		v.SetConfigFile(cf)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("error merging config file", "file", cf, "err", err)
		}
	}
}

// Load reads configuration and returns a validated Config. Precedence,
// highest first: flags > DIRSERVE_ environment variables > config files >
// defaults. flags may be nil.
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	readFiles(v, configFiles)

	v.SetEnvPrefix("DIRSERVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
