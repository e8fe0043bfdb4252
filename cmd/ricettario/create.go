// Create and update commands for the ricettario CLI. Both take the complete
// desired recipe tree as JSON; the store derives all ordering from list
// position.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var (
	createFile string
	updateFile string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a recipe from a JSON tree",
	Long: `Create reads a recipe input document (name, scalar fields, subsections
with ingredients, steps) and inserts it atomically.

Example:
  ricettario create --file tiramisu.json
  cat tiramisu.json | ricettario create --file -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readRecipeInput(createFile)
		if err != nil {
			return err
		}

		id, err := store.CreateRecipe(*in)
		if err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]int64{"id": id})
		}
		fmt.Printf("Created recipe %d\n", id)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a recipe with a new JSON tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		in, err := readRecipeInput(updateFile)
		if err != nil {
			return err
		}

		err = store.UpdateRecipe(id, *in)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}

		fmt.Printf("Updated recipe %d\n", id)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createFile, "file", "-", "recipe JSON file (\"-\" for stdin)")
	updateCmd.Flags().StringVar(&updateFile, "file", "-", "recipe JSON file (\"-\" for stdin)")
}

// readRecipeInput loads and decodes a RecipeInput document.
func readRecipeInput(path string) (*types.RecipeInput, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	var in types.RecipeInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode recipe input: %w", err)
	}
	return &in, nil
}
