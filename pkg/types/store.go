package types

import "errors"

// Store provides transactional access to the recipe catalog. Every method
// runs in its own transaction: on success the transaction commits before the
// method returns, on failure it rolls back completely. There are no
// partially-committed effects.
type Store interface {
	// ListRecipes returns summaries of all recipes, ordered by name.
	ListRecipes() ([]RecipeSummary, error)

	// GetRecipe returns the full recipe tree for the given id.
	// Returns ErrNotFound if no recipe exists with that id.
	GetRecipe(id int64) (*Recipe, error)

	// CreateRecipe inserts a recipe with its complete subsection, ingredient
	// and step tree. Returns the new recipe id.
	CreateRecipe(in RecipeInput) (int64, error)

	// UpdateRecipe replaces the recipe's scalar fields and its entire tree.
	// Returns ErrNotFound if no recipe exists with that id.
	UpdateRecipe(id int64, in RecipeInput) error

	// DeleteRecipe removes the recipe and, by cascade, its tree.
	// The bool reports whether a row was actually removed.
	DeleteRecipe(id int64) (bool, error)

	// UpdateQuantities sets current_quantity for each referenced ingredient.
	// Ids that match no ingredient are skipped without error.
	UpdateQuantities(updates []QuantityUpdate) error

	// ListCategories returns all categories, ordered by name.
	ListCategories() ([]Category, error)

	// CreateCategory inserts a category. Returns ErrInvalidName for an empty
	// name and ErrDuplicateName when the name is already in use.
	CreateCategory(name string) (int64, error)

	// DeleteCategory removes a category. Recipes referencing it keep their
	// rows with category_id cleared. The bool reports whether a row existed.
	DeleteCategory(id int64) (bool, error)

	// ListUnits returns all units, ordered by name.
	ListUnits() ([]Unit, error)

	// CreateUnit inserts a unit. Returns ErrInvalidName when name or
	// abbreviation is empty and ErrDuplicateName when the abbreviation is
	// already in use.
	CreateUnit(name, abbreviation string) (int64, error)

	// DeleteUnit removes a unit. Nothing references units by key, so there
	// is no cascade. The bool reports whether a row existed.
	DeleteUnit(id int64) (bool, error)

	// Settings returns the full settings map.
	Settings() (map[string]string, error)

	// UpdateSettings upserts each key/value pair.
	UpdateSettings(values map[string]string) error

	// Export produces a self-contained snapshot of the whole catalog.
	Export() (*Document, error)

	// Import reconciles a document against the store in one transaction.
	// Any failure aborts the whole import with no partial effect.
	Import(doc *Document) error

	// Close releases the underlying database handle. Idempotent; after
	// Close all operations return ErrStoreClosed.
	Close() error
}

// Store operation errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidName       = errors.New("name must not be empty")
	ErrDuplicateName     = errors.New("name already in use")
	ErrMalformedDocument = errors.New("malformed catalog document")
	ErrStoreClosed       = errors.New("store is closed")
)
