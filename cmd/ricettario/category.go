// Category commands for the ricettario CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage recipe categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := store.ListCategories()
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if jsonOutput {
			return printJSON(categories)
		}
		for _, c := range categories {
			fmt.Printf("%d\t%s\n", c.ID, c.Name)
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.CreateCategory(args[0])
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("category %q already exists", args[0])
		}
		if errors.Is(err, types.ErrInvalidName) {
			return errors.New("category name must not be empty")
		}
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		fmt.Printf("Created category %d\n", id)
		return nil
	},
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a category (recipes keep their rows, reference cleared)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		deleted, err := store.DeleteCategory(id)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		if !deleted {
			return fmt.Errorf("category %d not found", id)
		}
		fmt.Printf("Deleted category %d\n", id)
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRemoveCmd)
}
