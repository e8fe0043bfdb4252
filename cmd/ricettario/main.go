// Package main provides the ricettario CLI, a personal recipe catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/internal/paths"
	"github.com/cucina-labs/ricettario/pkg/sqlite"
	"github.com/cucina-labs/ricettario/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var (
	// store is the global recipe store, opened before every command that
	// needs it and closed afterwards.
	store types.Store

	// logger backs the store; its level comes from config.
	logger *zap.Logger

	// Global persistent flag values.
	flagConfigDir string
	flagDataDir   string
	jsonOutput    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ricettario",
	Short: "Ricettario is a personal recipe catalog",
	Long: `Ricettario stores recipes with grouped ingredients, preparation steps,
categories and photos in a local SQLite catalog, and can export or import
the whole catalog as a portable document.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: ./"+paths.DefaultDataDirName+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(unitCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// openStore loads config and opens the recipe store.
func openStore(cmd *cobra.Command, args []string) error {
	// Version needs no store.
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(flagConfigDir, flagDataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	s, err := sqlite.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	store = s
	return nil
}

// closeStore releases the store and flushes the logger.
func closeStore(cmd *cobra.Command, args []string) error {
	if store != nil {
		if err := store.Close(); err != nil {
			return err
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the recipe catalog",
	Long:  `Init creates the catalog database and seeds default categories, units and settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already opened and seeded by PersistentPreRunE.
		fmt.Println("Catalog initialized")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ricettario v0.1.0")
	},
}
