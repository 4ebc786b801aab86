package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("serve.root", "./public")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// readConfig primes the global viper instance so the PersistentPreRunE hook
// (logging setup) and subcommands see flags, environment, and the config
// file. Subcommands that need a validated struct go through config.Load on
// top of this.
func readConfig(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DIRSERVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "err", err)
		}
	}
}

func configFiles(cmd *cobra.Command) []string {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		return nil
	}
	return []string{configFile}
}
