package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "dirserve",
	Short:   "HTTP file server with recursive directory listings",
	Long: `Dirserve is a small HTTP server that serves files and recursive
plain-text directory listings from a single root directory, with
strong-ETag conditional GET support.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("root", "", "directory to serve (default: ./public, env: DIRSERVE_SERVE_ROOT)")

	_ = viper.BindPFlag("serve.root", rootCmd.PersistentFlags().Lookup("root"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
