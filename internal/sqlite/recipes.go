// Recipe tree operations. A recipe owns ordered ingredient subsections
// (each owning ordered ingredients) and ordered preparation steps. Updates
// replace the whole tree: the caller supplies the complete desired state and
// the store re-derives every sort_order and step_number from list position.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/pkg/types"
)

// ListRecipes returns summaries of all recipes with the category name
// resolved, ordered by recipe name.
func (s *Store) ListRecipes() ([]types.RecipeSummary, error) {
	summaries := []types.RecipeSummary{}
	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(`
            SELECT r.id, r.name, r.description, r.creation_date,
                   r.preparation_time, r.photo_url, r.category_id, c.name
            FROM recipes r
            LEFT JOIN categories c ON r.category_id = c.id
            ORDER BY r.name`)
		if err != nil {
			return fmt.Errorf("listing recipes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				sum          types.RecipeSummary
				description  sql.NullString
				creationDate sql.NullString
			)
			if err := rows.Scan(&sum.ID, &sum.Name, &description, &creationDate,
				&sum.PreparationTime, &sum.PhotoURL, &sum.CategoryID, &sum.CategoryName); err != nil {
				return fmt.Errorf("scanning recipe summary: %w", err)
			}
			sum.Description = description.String
			sum.CreationDate = creationDate.String
			summaries = append(summaries, sum)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetRecipe returns the full recipe tree. The scalar row, subsections,
// ingredients and steps are read inside one transaction so a concurrent
// tree rewrite can never show through mid-replacement.
func (s *Store) GetRecipe(id int64) (*types.Recipe, error) {
	var recipe *types.Recipe
	err := s.withTx(func(tx *sql.Tx) error {
		r, err := readRecipe(tx, id)
		if err != nil {
			return err
		}
		recipe = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// CreateRecipe inserts the recipe row and its complete tree atomically.
// An omitted creation_date defaults to the current date. Every ingredient
// starts with original_quantity == current_quantity.
func (s *Store) CreateRecipe(in types.RecipeInput) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		creationDate := in.CreationDate
		if creationDate == "" {
			creationDate = today()
		}
		now := nowTimestamp()

		res, err := tx.Exec(`
            INSERT INTO recipes (name, description, creation_date,
                preparation_time, photo_url, category_id, created_at, updated_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			in.Name, in.Description, creationDate,
			in.PreparationTime, in.PhotoURL, in.CategoryID, now, now)
		if err != nil {
			return fmt.Errorf("inserting recipe: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading recipe id: %w", err)
		}
		return insertInputTree(tx, id, in)
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("recipe created", zap.Int64("id", id), zap.String("name", in.Name))
	return id, nil
}

// UpdateRecipe overwrites the recipe's scalar fields, refreshes updated_at,
// destroys the existing subsection/ingredient/step tree and re-inserts the
// supplied one. Returns types.ErrNotFound if the recipe does not exist.
func (s *Store) UpdateRecipe(id int64, in types.RecipeInput) error {
	err := s.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM recipes WHERE id = ?", id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("checking recipe existence: %w", err)
		}

		if _, err := tx.Exec(`
            UPDATE recipes
            SET name = ?, description = ?, creation_date = ?,
                preparation_time = ?, photo_url = ?, category_id = ?, updated_at = ?
            WHERE id = ?`,
			in.Name, in.Description, in.CreationDate,
			in.PreparationTime, in.PhotoURL, in.CategoryID, nowTimestamp(), id); err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}

		// Ingredients go with their subsections via the cascade.
		if _, err := tx.Exec("DELETE FROM ingredient_subsections WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing subsections: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM preparation_steps WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing steps: %w", err)
		}

		return insertInputTree(tx, id, in)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("recipe updated", zap.Int64("id", id))
	return nil
}

// DeleteRecipe removes the recipe row; the schema cascades the tree away.
// The bool reports whether a row was actually removed.
func (s *Store) DeleteRecipe(id int64) (bool, error) {
	var deleted bool
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM recipes WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting recipe: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading rows affected: %w", err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Debug("recipe deleted", zap.Int64("id", id))
	}
	return deleted, nil
}

// UpdateQuantities sets current_quantity for each referenced ingredient.
// Ids that match no row are skipped without error; original_quantity is
// never touched.
func (s *Store) UpdateQuantities(updates []types.QuantityUpdate) error {
	return s.withTx(func(tx *sql.Tx) error {
		for _, u := range updates {
			if _, err := tx.Exec(
				"UPDATE ingredients SET current_quantity = ? WHERE id = ?",
				u.CurrentQuantity, u.IngredientID,
			); err != nil {
				return fmt.Errorf("updating ingredient %d: %w", u.IngredientID, err)
			}
		}
		return nil
	})
}

// readRecipe hydrates the full recipe tree inside the caller's transaction.
func readRecipe(tx *sql.Tx, id int64) (*types.Recipe, error) {
	row := tx.QueryRow(`
        SELECT r.id, r.name, r.description, r.creation_date, r.preparation_time,
               r.photo_url, r.category_id, c.name, r.created_at, r.updated_at
        FROM recipes r
        LEFT JOIN categories c ON r.category_id = c.id
        WHERE r.id = ?`, id)

	var (
		r            types.Recipe
		description  sql.NullString
		creationDate sql.NullString
	)
	err := row.Scan(&r.ID, &r.Name, &description, &creationDate, &r.PreparationTime,
		&r.PhotoURL, &r.CategoryID, &r.CategoryName, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe %d: %w", id, err)
	}
	r.Description = description.String
	r.CreationDate = creationDate.String

	r.Subsections, r.Steps, err = readRecipeTree(tx, id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// readRecipeTree reads the ordered subsections (with ingredients) and steps
// of a recipe. Shared between GetRecipe and Export. Subsections are scanned
// completely before their ingredients are queried; the pool holds a single
// connection, so only one result set may be open at a time.
func readRecipeTree(tx *sql.Tx, recipeID int64) ([]types.IngredientSubsection, []types.PreparationStep, error) {
	subRows, err := tx.Query(`
        SELECT id, recipe_id, name, sort_order
        FROM ingredient_subsections
        WHERE recipe_id = ?
        ORDER BY sort_order`, recipeID)
	if err != nil {
		return nil, nil, fmt.Errorf("querying subsections: %w", err)
	}

	subsections := []types.IngredientSubsection{}
	for subRows.Next() {
		var sub types.IngredientSubsection
		if err := subRows.Scan(&sub.ID, &sub.RecipeID, &sub.Name, &sub.SortOrder); err != nil {
			subRows.Close()
			return nil, nil, fmt.Errorf("scanning subsection: %w", err)
		}
		subsections = append(subsections, sub)
	}
	if err := subRows.Err(); err != nil {
		subRows.Close()
		return nil, nil, fmt.Errorf("iterating subsections: %w", err)
	}
	subRows.Close()

	for i := range subsections {
		ingredients, err := readIngredients(tx, subsections[i].ID)
		if err != nil {
			return nil, nil, err
		}
		subsections[i].Ingredients = ingredients
	}

	steps, err := readSteps(tx, recipeID)
	if err != nil {
		return nil, nil, err
	}
	return subsections, steps, nil
}

// readIngredients reads one subsection's ingredients in sort order.
func readIngredients(tx *sql.Tx, subsectionID int64) ([]types.Ingredient, error) {
	rows, err := tx.Query(`
        SELECT id, subsection_id, name, original_quantity, current_quantity, unit, sort_order
        FROM ingredients
        WHERE subsection_id = ?
        ORDER BY sort_order`, subsectionID)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []types.Ingredient{}
	for rows.Next() {
		var (
			ing  types.Ingredient
			unit sql.NullString
		)
		if err := rows.Scan(&ing.ID, &ing.SubsectionID, &ing.Name,
			&ing.OriginalQuantity, &ing.CurrentQuantity, &unit, &ing.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Unit = unit.String
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ingredients: %w", err)
	}
	return ingredients, nil
}

// readSteps reads one recipe's preparation steps in step order.
func readSteps(tx *sql.Tx, recipeID int64) ([]types.PreparationStep, error) {
	rows, err := tx.Query(`
        SELECT id, recipe_id, step_number, description
        FROM preparation_steps
        WHERE recipe_id = ?
        ORDER BY step_number`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("querying steps: %w", err)
	}
	defer rows.Close()

	steps := []types.PreparationStep{}
	for rows.Next() {
		var step types.PreparationStep
		if err := rows.Scan(&step.ID, &step.RecipeID, &step.StepNumber, &step.Description); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating steps: %w", err)
	}
	return steps, nil
}

// insertInputTree inserts the subsection/ingredient/step tree of a
// RecipeInput under recipeID. Sort orders are dense and 0-based from list
// position; step numbers are dense and 1-based.
func insertInputTree(tx *sql.Tx, recipeID int64, in types.RecipeInput) error {
	for idx, sub := range in.Subsections {
		res, err := tx.Exec(`
            INSERT INTO ingredient_subsections (recipe_id, name, sort_order)
            VALUES (?, ?, ?)`, recipeID, sub.Name, idx)
		if err != nil {
			return fmt.Errorf("inserting subsection %q: %w", sub.Name, err)
		}
		subID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading subsection id: %w", err)
		}

		for ingIdx, ing := range sub.Ingredients {
			original, current := resolveQuantities(ing)
			if _, err := tx.Exec(`
                INSERT INTO ingredients (subsection_id, name, original_quantity,
                    current_quantity, unit, sort_order)
                VALUES (?, ?, ?, ?, ?, ?)`,
				subID, ing.Name, original, current, ing.Unit, ingIdx); err != nil {
				return fmt.Errorf("inserting ingredient %q: %w", ing.Name, err)
			}
		}
	}

	for idx, step := range in.Steps {
		if _, err := tx.Exec(`
            INSERT INTO preparation_steps (recipe_id, step_number, description)
            VALUES (?, ?, ?)`, recipeID, idx+1, step.Description); err != nil {
			return fmt.Errorf("inserting step %d: %w", idx+1, err)
		}
	}
	return nil
}

// resolveQuantities turns an ingredient input into stored quantities.
// Each stored quantity falls back to the plain Quantity field; if after
// that exactly one of the two is set, it stands in for the other.
func resolveQuantities(in types.IngredientInput) (original, current *float64) {
	original = in.OriginalQuantity
	if original == nil {
		original = in.Quantity
	}
	current = in.CurrentQuantity
	if current == nil {
		current = in.Quantity
	}
	if original == nil {
		original = current
	}
	if current == nil {
		current = original
	}
	return original, current
}
