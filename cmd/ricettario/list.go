// List command for the ricettario CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	Long:  `List prints a summary line per recipe, ordered by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := store.ListRecipes()
		if err != nil {
			return fmt.Errorf("list recipes: %w", err)
		}

		if jsonOutput {
			return printJSON(summaries)
		}
		for _, s := range summaries {
			fmt.Printf("%d\t%s\t%s\n", s.ID, s.Name, orDash(s.CategoryName))
		}
		return nil
	},
}
