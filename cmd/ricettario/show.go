// Show command for the ricettario CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a recipe with its full ingredient and step tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		recipe, err := store.GetRecipe(id)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("get recipe: %w", err)
		}

		if jsonOutput {
			return printJSON(recipe)
		}

		fmt.Printf("%s (id %d)\n", recipe.Name, recipe.ID)
		if recipe.CategoryName != nil {
			fmt.Printf("Category: %s\n", *recipe.CategoryName)
		}
		if recipe.Description != "" {
			fmt.Println(recipe.Description)
		}
		if recipe.PreparationTime != nil {
			fmt.Printf("Preparation time: %d min\n", *recipe.PreparationTime)
		}
		for _, sub := range recipe.Subsections {
			fmt.Printf("\n%s\n", sub.Name)
			for _, ing := range sub.Ingredients {
				qty := "-"
				if ing.CurrentQuantity != nil {
					qty = fmt.Sprintf("%g", *ing.CurrentQuantity)
				}
				fmt.Printf("  %s %s %s\n", qty, ing.Unit, ing.Name)
			}
		}
		if len(recipe.Steps) > 0 {
			fmt.Println()
			for _, step := range recipe.Steps {
				fmt.Printf("%d. %s\n", step.StepNumber, step.Description)
			}
		}
		return nil
	},
}
