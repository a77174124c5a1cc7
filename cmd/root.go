package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mariesavch/css-in-go/internal/config"
	"github.com/mariesavch/css-in-go/internal/log"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response does not race with the input loop.
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".cssgo/config.yaml"
	debugEnv        = "CSSGO_DEBUG"
)

var (
	version = "dev"
	cfgFile string
	debug   bool

	v          = config.NewViper()
	cfg        config.Config
	configPath string
	closeLog   func()
)

var rootCmd = &cobra.Command{
	Use:   "cssgo",
	Short: "Themeable, collision-free stylesheets generated at runtime",
	Long: `cssgo registers style sheets with a provider that assigns each class a
unique name, keeps one stylesheet up to date, and rebuilds it in place when
the theme changes.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .cssgo/config.yaml, then ~/.config/cssgo/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write debug logs (also CSSGO_DEBUG=1)")
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := initConfig(); err != nil {
		return err
	}
	return initLogging(cmd)
}

func teardown(*cobra.Command, []string) error {
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	return nil
}

func initConfig() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .cssgo/config.yaml (current directory)
		// 2. ~/.config/cssgo/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "cssgo"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFile == "":
			// No config file found anywhere - create default at .cssgo/config.yaml
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				v.SetConfigFile(localConfigPath)
				_ = v.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		case errors.As(err, &notFound) || os.IsNotExist(err):
			return fmt.Errorf("config file %s not found", cfgFile)
		default:
			return fmt.Errorf("reading config: %w", err)
		}
	}

	configPath = v.ConfigFileUsed()
	if configPath == "" {
		configPath = localConfigPath
	}

	var err error
	cfg, err = config.Decode(v)
	return err
}

func initLogging(cmd *cobra.Command) error {
	if !debug && !cfg.Log.Debug && os.Getenv(debugEnv) == "" {
		return nil
	}
	var (
		closer func()
		err    error
	)
	if cmd.Name() == "preview" {
		closer, err = log.InitWithTeaLog(cfg.Log.Path, "cssgo")
	} else {
		closer, err = log.Init(cfg.Log.Path)
	}
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	closeLog = closer
	log.Info(log.CatConfig, "Loaded config", "path", configPath, "preset", cfg.Theme.Preset)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
