// Schema DDL for the recipe catalog. Every statement is idempotent so the
// store can re-run initialization on each open without touching existing
// rows.
package sqlite

// Connection pragmas applied at open. WAL keeps readers from blocking the
// writer; foreign_keys enforces the cascade and set-null rules below.
var openPragmas = []string{
	`PRAGMA journal_mode = WAL;`,
	`PRAGMA foreign_keys = ON;`,
	`PRAGMA busy_timeout = 5000;`,
}

const (
	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createUnits = `CREATE TABLE IF NOT EXISTS units (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    abbreviation TEXT NOT NULL UNIQUE
);`

	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    creation_date DATE,
    preparation_time INTEGER,
    photo_url TEXT,
    category_id INTEGER,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
);`

	createSubsections = `CREATE TABLE IF NOT EXISTS ingredient_subsections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    sort_order INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    subsection_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    original_quantity REAL,
    current_quantity REAL,
    unit TEXT,
    sort_order INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (subsection_id) REFERENCES ingredient_subsections(id) ON DELETE CASCADE
);`

	createSteps = `CREATE TABLE IF NOT EXISTS preparation_steps (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id INTEGER NOT NULL,
    step_number INTEGER NOT NULL,
    description TEXT NOT NULL,
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);`
)

// Index DDL for the tree reads and the name lookups used by import.
const (
	idxRecipesName        = `CREATE INDEX IF NOT EXISTS idx_recipes_name ON recipes(name);`
	idxRecipesCategory    = `CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category_id);`
	idxSubsectionsRecipe  = `CREATE INDEX IF NOT EXISTS idx_subsections_recipe ON ingredient_subsections(recipe_id);`
	idxIngredientsSubsect = `CREATE INDEX IF NOT EXISTS idx_ingredients_subsection ON ingredients(subsection_id);`
	idxStepsRecipe        = `CREATE INDEX IF NOT EXISTS idx_steps_recipe ON preparation_steps(recipe_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSettings,
	createCategories,
	createUnits,
	createRecipes,
	createSubsections,
	createIngredients,
	createSteps,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRecipesName,
	idxRecipesCategory,
	idxSubsectionsRecipe,
	idxIngredientsSubsect,
	idxStepsRecipe,
}
