// Scale command for the ricettario CLI: adjusts working quantities without
// touching the authored amounts.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <ingredient-id>=<quantity> ...",
	Short: "Set current quantities for ingredients",
	Long: `Scale sets current_quantity for each listed ingredient id. Original
quantities are never modified; ids that match no ingredient are skipped.

Example:
  ricettario scale 12=750 13=3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updates := make([]types.QuantityUpdate, 0, len(args))
		for _, arg := range args {
			id, qty, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid argument %q, want <ingredient-id>=<quantity>", arg)
			}
			ingredientID, err := parseID(id)
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(qty, 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", qty)
			}
			updates = append(updates, types.QuantityUpdate{
				IngredientID:    ingredientID,
				CurrentQuantity: &value,
			})
		}

		if err := store.UpdateQuantities(updates); err != nil {
			return fmt.Errorf("update quantities: %w", err)
		}
		fmt.Printf("Updated %d ingredient(s)\n", len(updates))
		return nil
	},
}
