package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/boxdrop-backend/internal/app"
	"github.com/heartmarshall/boxdrop-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "boxd",
	Short:         "Anonymous feedback boxes: form actions, submissions and share links",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the YAML config (default $CONFIG_PATH, then ./config.yaml)")
}

// loadConfig reads the config selected by --config or CONFIG_PATH and
// installs the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
