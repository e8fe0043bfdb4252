// Whole-catalog export and import. Export produces a deep self-contained
// snapshot; import reconciles a foreign document against existing rows by
// name-keyed identity, in one transaction with zero partial effect on
// failure.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/pkg/types"
)

// Export reads the entire catalog inside one transaction: every recipe
// fully expanded, all categories, all units and the settings map.
func (s *Store) Export() (*types.Document, error) {
	doc := &types.Document{
		Version:    types.DocumentVersion,
		ExportID:   uuid.NewString(),
		ExportedAt: nowTimestamp(),
		Recipes:    []types.Recipe{},
		Categories: []types.Category{},
		Units:      []types.Unit{},
		Settings:   map[string]string{},
	}

	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(`
            SELECT r.id, r.name, r.description, r.creation_date, r.preparation_time,
                   r.photo_url, r.category_id, c.name, r.created_at, r.updated_at
            FROM recipes r
            LEFT JOIN categories c ON r.category_id = c.id
            ORDER BY r.id`)
		if err != nil {
			return fmt.Errorf("querying recipes for export: %w", err)
		}
		for rows.Next() {
			var (
				r            types.Recipe
				description  sql.NullString
				creationDate sql.NullString
			)
			if err := rows.Scan(&r.ID, &r.Name, &description, &creationDate,
				&r.PreparationTime, &r.PhotoURL, &r.CategoryID, &r.CategoryName,
				&r.CreatedAt, &r.UpdatedAt); err != nil {
				rows.Close()
				return fmt.Errorf("scanning recipe for export: %w", err)
			}
			r.Description = description.String
			r.CreationDate = creationDate.String
			doc.Recipes = append(doc.Recipes, r)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating recipes for export: %w", err)
		}
		rows.Close()

		for i := range doc.Recipes {
			subs, steps, err := readRecipeTree(tx, doc.Recipes[i].ID)
			if err != nil {
				return err
			}
			doc.Recipes[i].Subsections = subs
			doc.Recipes[i].Steps = steps
		}

		catRows, err := tx.Query("SELECT id, name FROM categories ORDER BY id")
		if err != nil {
			return fmt.Errorf("querying categories for export: %w", err)
		}
		for catRows.Next() {
			var c types.Category
			if err := catRows.Scan(&c.ID, &c.Name); err != nil {
				catRows.Close()
				return fmt.Errorf("scanning category for export: %w", err)
			}
			doc.Categories = append(doc.Categories, c)
		}
		if err := catRows.Err(); err != nil {
			catRows.Close()
			return fmt.Errorf("iterating categories for export: %w", err)
		}
		catRows.Close()

		unitRows, err := tx.Query("SELECT id, name, abbreviation FROM units ORDER BY id")
		if err != nil {
			return fmt.Errorf("querying units for export: %w", err)
		}
		for unitRows.Next() {
			var u types.Unit
			if err := unitRows.Scan(&u.ID, &u.Name, &u.Abbreviation); err != nil {
				unitRows.Close()
				return fmt.Errorf("scanning unit for export: %w", err)
			}
			doc.Units = append(doc.Units, u)
		}
		if err := unitRows.Err(); err != nil {
			unitRows.Close()
			return fmt.Errorf("iterating units for export: %w", err)
		}
		unitRows.Close()

		settingRows, err := tx.Query("SELECT key, value FROM settings")
		if err != nil {
			return fmt.Errorf("querying settings for export: %w", err)
		}
		defer settingRows.Close()
		for settingRows.Next() {
			var key string
			var value sql.NullString
			if err := settingRows.Scan(&key, &value); err != nil {
				return fmt.Errorf("scanning setting for export: %w", err)
			}
			doc.Settings[key] = value.String
		}
		return settingRows.Err()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("catalog exported",
		zap.String("export_id", doc.ExportID),
		zap.Int("recipes", len(doc.Recipes)))
	return doc, nil
}

// Import reconciles a document against the store in one transaction.
// Categories and units are inserted if absent by their unique key; settings
// are upserted with the imported value winning; recipes are matched by
// exact name, updated in place when found and inserted when not. Document
// ids are never trusted: they belong to the exporting store's id-space, so
// category references are resolved back through the category name. Any
// failure aborts the whole import.
func (s *Store) Import(doc *types.Document) error {
	if doc == nil {
		return types.ErrMalformedDocument
	}

	err := s.withTx(func(tx *sql.Tx) error {
		for _, c := range doc.Categories {
			if c.Name == "" {
				return fmt.Errorf("%w: category with empty name", types.ErrMalformedDocument)
			}
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO categories (name) VALUES (?)", c.Name,
			); err != nil {
				return fmt.Errorf("importing category %q: %w", c.Name, err)
			}
		}

		for _, u := range doc.Units {
			if u.Name == "" || u.Abbreviation == "" {
				return fmt.Errorf("%w: unit with empty name or abbreviation", types.ErrMalformedDocument)
			}
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO units (name, abbreviation) VALUES (?, ?)",
				u.Name, u.Abbreviation,
			); err != nil {
				return fmt.Errorf("importing unit %q: %w", u.Abbreviation, err)
			}
		}

		for key, value := range doc.Settings {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
				key, value,
			); err != nil {
				return fmt.Errorf("importing setting %s: %w", key, err)
			}
		}

		// Category names by the exporting store's ids, for reference
		// resolution below.
		categoryNames := make(map[int64]string, len(doc.Categories))
		for _, c := range doc.Categories {
			categoryNames[c.ID] = c.Name
		}

		for _, r := range doc.Recipes {
			if r.Name == "" {
				return fmt.Errorf("%w: recipe with empty name", types.ErrMalformedDocument)
			}

			categoryID, err := resolveCategoryRef(tx, r, categoryNames)
			if err != nil {
				return err
			}

			var recipeID int64
			// Lowest id wins when several recipes share the name.
			err = tx.QueryRow(
				"SELECT id FROM recipes WHERE name = ? ORDER BY id LIMIT 1", r.Name,
			).Scan(&recipeID)
			switch {
			case err == nil:
				if _, err := tx.Exec(`
                    UPDATE recipes
                    SET description = ?, creation_date = ?, preparation_time = ?,
                        photo_url = ?, category_id = ?, updated_at = ?
                    WHERE id = ?`,
					r.Description, r.CreationDate, r.PreparationTime,
					r.PhotoURL, categoryID, nowTimestamp(), recipeID); err != nil {
					return fmt.Errorf("updating imported recipe %q: %w", r.Name, err)
				}
				if _, err := tx.Exec("DELETE FROM ingredient_subsections WHERE recipe_id = ?", recipeID); err != nil {
					return fmt.Errorf("clearing subsections for %q: %w", r.Name, err)
				}
				if _, err := tx.Exec("DELETE FROM preparation_steps WHERE recipe_id = ?", recipeID); err != nil {
					return fmt.Errorf("clearing steps for %q: %w", r.Name, err)
				}
			case errors.Is(err, sql.ErrNoRows):
				now := nowTimestamp()
				res, err := tx.Exec(`
                    INSERT INTO recipes (name, description, creation_date,
                        preparation_time, photo_url, category_id, created_at, updated_at)
                    VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
					r.Name, r.Description, r.CreationDate,
					r.PreparationTime, r.PhotoURL, categoryID, now, now)
				if err != nil {
					return fmt.Errorf("inserting imported recipe %q: %w", r.Name, err)
				}
				recipeID, err = res.LastInsertId()
				if err != nil {
					return fmt.Errorf("reading imported recipe id: %w", err)
				}
			default:
				return fmt.Errorf("matching recipe %q by name: %w", r.Name, err)
			}

			if err := insertDocumentTree(tx, recipeID, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("import aborted", zap.Error(err))
		return err
	}

	s.logger.Info("catalog imported",
		zap.Int("recipes", len(doc.Recipes)),
		zap.Int("categories", len(doc.Categories)),
		zap.Int("units", len(doc.Units)))
	return nil
}

// resolveCategoryRef maps a document recipe's category reference into this
// store's id-space by name. A reference to a category the document does not
// name, or a name this store does not have, resolves to no category.
func resolveCategoryRef(tx *sql.Tx, r types.Recipe, categoryNames map[int64]string) (*int64, error) {
	if r.CategoryID == nil {
		return nil, nil
	}
	name, ok := categoryNames[*r.CategoryID]
	if !ok && r.CategoryName != nil {
		name = *r.CategoryName
		ok = true
	}
	if !ok || name == "" {
		return nil, nil
	}

	var id int64
	err := tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving category %q: %w", name, err)
	}
	return &id, nil
}

// insertDocumentTree inserts a document recipe's subsection/ingredient/step
// tree under recipeID. Ordering fields are re-derived from document list
// position; current_quantity falls back to original_quantity when absent.
func insertDocumentTree(tx *sql.Tx, recipeID int64, r types.Recipe) error {
	for idx, sub := range r.Subsections {
		res, err := tx.Exec(`
            INSERT INTO ingredient_subsections (recipe_id, name, sort_order)
            VALUES (?, ?, ?)`, recipeID, sub.Name, idx)
		if err != nil {
			return fmt.Errorf("importing subsection %q: %w", sub.Name, err)
		}
		subID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading imported subsection id: %w", err)
		}

		for ingIdx, ing := range sub.Ingredients {
			current := ing.CurrentQuantity
			if current == nil {
				current = ing.OriginalQuantity
			}
			if _, err := tx.Exec(`
                INSERT INTO ingredients (subsection_id, name, original_quantity,
                    current_quantity, unit, sort_order)
                VALUES (?, ?, ?, ?, ?, ?)`,
				subID, ing.Name, ing.OriginalQuantity, current, ing.Unit, ingIdx); err != nil {
				return fmt.Errorf("importing ingredient %q: %w", ing.Name, err)
			}
		}
	}

	for idx, step := range r.Steps {
		if _, err := tx.Exec(`
            INSERT INTO preparation_steps (recipe_id, step_number, description)
            VALUES (?, ?, ?)`, recipeID, idx+1, step.Description); err != nil {
			return fmt.Errorf("importing step %d: %w", idx+1, err)
		}
	}
	return nil
}
