// Unit commands for the ricettario CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Manage measurement units",
}

var unitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all units",
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := store.ListUnits()
		if err != nil {
			return fmt.Errorf("list units: %w", err)
		}
		if jsonOutput {
			return printJSON(units)
		}
		for _, u := range units {
			fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.Abbreviation)
		}
		return nil
	},
}

var unitAddCmd = &cobra.Command{
	Use:   "add <name> <abbreviation>",
	Short: "Create a unit",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.CreateUnit(args[0], args[1])
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("unit abbreviation %q already exists", args[1])
		}
		if errors.Is(err, types.ErrInvalidName) {
			return errors.New("unit name and abbreviation must not be empty")
		}
		if err != nil {
			return fmt.Errorf("create unit: %w", err)
		}
		fmt.Printf("Created unit %d\n", id)
		return nil
	},
}

var unitRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a unit (recipes are unaffected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		deleted, err := store.DeleteUnit(id)
		if err != nil {
			return fmt.Errorf("delete unit: %w", err)
		}
		if !deleted {
			return fmt.Errorf("unit %d not found", id)
		}
		fmt.Printf("Deleted unit %d\n", id)
		return nil
	},
}

func init() {
	unitCmd.AddCommand(unitListCmd)
	unitCmd.AddCommand(unitAddCmd)
	unitCmd.AddCommand(unitRemoveCmd)
}
