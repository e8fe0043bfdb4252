package types

// Category is a recipe grouping. Names are globally unique. Recipes
// reference categories weakly: deleting a category clears the reference on
// any recipe that used it.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Unit is an informational measurement unit. Abbreviations are globally
// unique. Ingredients carry units as free text, so deleting a Unit never
// touches any recipe.
type Unit struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
