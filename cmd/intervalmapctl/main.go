// Package main provides the intervalmapctl command-line tool, a thin
// demo driver over the intervalmap library: a persistent-across-runs
// interval table backed by a JSON snapshot on disk.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intervalmapctl",
		Short: "Query and mutate an intervalmap-backed address table",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			var err error
			if viper.GetBool("verbose") {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Sync()
		},
	}

	cmd.PersistentFlags().Bool("verbose", false, "enable development-mode (human-readable) logging")
	cmd.PersistentFlags().String("store", "", "path to the JSON snapshot file (default: ~/.intervalmapctl.json)")
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("store", cmd.PersistentFlags().Lookup("store"))

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newLookupCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newIPAMCmd())

	return cmd
}

// initConfig loads ~/.intervalmapctl.yaml if present and sets defaults,
// matching the convention set by the config subcommand.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("determining home directory: %w", err)
	}

	viper.SetConfigFile(filepath.Join(home, ".intervalmapctl.yaml"))
	viper.SetConfigType("yaml")
	viper.SetDefault("store", filepath.Join(home, ".intervalmapctl.json"))
	viper.SetDefault("format", "decimal")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func storePath() string {
	if p := viper.GetString("store"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".intervalmapctl.json")
}
