// Export and import commands for the ricettario CLI. The catalog document
// is the one portable on-disk format; export then import round-trips the
// whole catalog.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole catalog as a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := store.Export()
		if err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		data = append(data, '\n')

		if exportOutput == "-" {
			_, err := os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d recipe(s) to %s\n", len(doc.Recipes), exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog document",
	Long: `Import merges a catalog document into the store: categories and units
are inserted if absent, settings are overwritten, and recipes are matched
by name (updated when found, inserted when not). The import is atomic.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		doc, err := types.ParseDocument(data)
		if err != nil {
			return err
		}

		if err := store.Import(doc); err != nil {
			if errors.Is(err, types.ErrMalformedDocument) {
				return err
			}
			return fmt.Errorf("import catalog: %w", err)
		}
		fmt.Printf("Imported %d recipe(s)\n", len(doc.Recipes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "-", "output file (\"-\" for stdout)")
}
