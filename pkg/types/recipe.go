package types

// Recipe is a full recipe tree as read from the store: scalar fields, the
// resolved category name, ordered ingredient subsections and ordered
// preparation steps. Timestamps are RFC 3339 UTC strings; CreationDate is a
// plain YYYY-MM-DD calendar date.
type Recipe struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	CreationDate    string  `json:"creation_date"`
	PreparationTime *int    `json:"preparation_time"`
	PhotoURL        *string `json:"photo_url"`
	CategoryID      *int64  `json:"category_id"`
	CategoryName    *string `json:"category_name"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`

	Subsections []IngredientSubsection `json:"subsections"`
	Steps       []PreparationStep      `json:"steps"`
}

// IngredientSubsection is a named ingredient grouping within a recipe
// (e.g. "For the sauce"). SortOrder is dense and 0-based per recipe.
type IngredientSubsection struct {
	ID          int64        `json:"id"`
	RecipeID    int64        `json:"recipe_id"`
	Name        string       `json:"name"`
	SortOrder   int          `json:"sort_order"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient belongs to exactly one subsection. OriginalQuantity is the
// amount as authored; CurrentQuantity is an independently adjustable working
// amount. Unit is a free-text label, deliberately not a reference into the
// unit catalog. SortOrder is dense and 0-based per subsection.
type Ingredient struct {
	ID               int64    `json:"id"`
	SubsectionID     int64    `json:"subsection_id"`
	Name             string   `json:"name"`
	OriginalQuantity *float64 `json:"original_quantity"`
	CurrentQuantity  *float64 `json:"current_quantity"`
	Unit             string   `json:"unit"`
	SortOrder        int      `json:"sort_order"`
}

// PreparationStep belongs to exactly one recipe. StepNumber is dense and
// 1-based per recipe.
type PreparationStep struct {
	ID          int64  `json:"id"`
	RecipeID    int64  `json:"recipe_id"`
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// RecipeSummary is the scalar view returned by ListRecipes: no subsections
// or steps, category name resolved where present.
type RecipeSummary struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	CreationDate    string  `json:"creation_date"`
	PreparationTime *int    `json:"preparation_time"`
	PhotoURL        *string `json:"photo_url"`
	CategoryID      *int64  `json:"category_id"`
	CategoryName    *string `json:"category_name"`
}

// RecipeInput is the complete desired recipe tree supplied to CreateRecipe
// and UpdateRecipe. The store derives every sort_order and step_number from
// list position, so inputs carry no ordering fields of their own.
type RecipeInput struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	CreationDate    string            `json:"creation_date"`
	PreparationTime *int              `json:"preparation_time"`
	PhotoURL        *string           `json:"photo_url"`
	CategoryID      *int64            `json:"category_id"`
	Subsections     []SubsectionInput `json:"subsections"`
	Steps           []StepInput       `json:"steps"`
}

// SubsectionInput is one ingredient grouping in a RecipeInput.
type SubsectionInput struct {
	Name        string            `json:"name"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// IngredientInput is one ingredient in a RecipeInput. Quantity seeds both
// stored quantities on create. On update, OriginalQuantity and
// CurrentQuantity may be specified independently; each falls back to
// Quantity, and if exactly one of the two ends up set it stands in for the
// other.
type IngredientInput struct {
	Name             string   `json:"name"`
	Quantity         *float64 `json:"quantity"`
	OriginalQuantity *float64 `json:"original_quantity"`
	CurrentQuantity  *float64 `json:"current_quantity"`
	Unit             string   `json:"unit"`
}

// StepInput is one preparation step in a RecipeInput.
type StepInput struct {
	Description string `json:"description"`
}

// QuantityUpdate targets a single ingredient's current_quantity.
type QuantityUpdate struct {
	IngredientID    int64    `json:"id"`
	CurrentQuantity *float64 `json:"current_quantity"`
}
