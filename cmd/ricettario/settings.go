// Settings commands for the ricettario CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := store.Settings()
		if err != nil {
			return fmt.Errorf("read settings: %w", err)
		}
		if jsonOutput {
			return printJSON(settings)
		}

		keys := make([]string, 0, len(settings))
		for key := range settings {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s=%s\n", key, settings[key])
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.UpdateSettings(map[string]string{args[0]: args[1]}); err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}
