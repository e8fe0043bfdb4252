// Delete command for the ricettario CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe and its ingredient and step tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := store.DeleteRecipe(id)
		if err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		if !deleted {
			return fmt.Errorf("recipe %d not found", id)
		}

		fmt.Printf("Deleted recipe %d\n", id)
		return nil
	},
}
