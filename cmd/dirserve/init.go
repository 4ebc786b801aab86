package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config.yaml for dirserve.

You will be prompted for:
  - Directory to serve
  - HTTP port

Pass --non-interactive to take the values from flags, env, and defaults
without prompting. An existing config file is never overwritten unless
--force is given.`,
	RunE: runInit,
}

var (
	initOutput         string
	initNonInteractive bool
	initForce          bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "config.yaml", "config file to write")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "do not prompt; use flags, env, and defaults")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

// fileConfig mirrors the config file layout the config package reads.
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Serve struct {
		Root string `yaml:"root"`
	} `yaml:"serve"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(initOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", initOutput, err)
		}
	}

	serveRoot := viper.GetString("serve.root")
	port := viper.GetInt("server.port")

	if !initNonInteractive {
		rootPrompt := promptui.Prompt{
			Label:   "Directory to serve",
			Default: serveRoot,
			Validate: func(s string) error {
				if s == "" {
					return errors.New("directory must not be empty")
				}
				return nil
			},
		}
		answer, err := rootPrompt.Run()
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		serveRoot = answer

		portPrompt := promptui.Prompt{
			Label:   "HTTP port",
			Default: strconv.Itoa(port),
			Validate: func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 || n > 65535 {
					return errors.New("port must be a number between 1 and 65535")
				}
				return nil
			},
		}
		answer, err = portPrompt.Run()
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		port, _ = strconv.Atoi(answer)
	}

	var cfg fileConfig
	cfg.Server.Port = port
	cfg.Serve.Root = serveRoot
	cfg.Log.Level = viper.GetString("log.level")
	cfg.Log.Format = viper.GetString("log.format")

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(initOutput, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", initOutput, err)
	}

	fmt.Printf("wrote %s\n", initOutput)
	return nil
}
