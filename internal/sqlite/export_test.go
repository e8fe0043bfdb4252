// Export/import tests: document shape, cross-store round trips and the
// all-or-nothing guarantee on malformed documents.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/pkg/types"
)

func TestExport_DocumentShape(t *testing.T) {
	s := newTestStore(t)
	catID := categoryID(t, s, "Dolci")

	_, err := s.CreateRecipe(tiramisuInput(catID))
	require.NoError(t, err)

	doc, err := s.Export()
	require.NoError(t, err)

	assert.Equal(t, types.DocumentVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportID)
	assert.NotEmpty(t, doc.ExportedAt)

	require.Len(t, doc.Recipes, 1)
	r := doc.Recipes[0]
	assert.Equal(t, "Tiramisù", r.Name)
	require.Len(t, r.Subsections, 1)
	require.Len(t, r.Subsections[0].Ingredients, 1)
	require.Len(t, r.Steps, 1)

	assert.Len(t, doc.Categories, len(defaultCategories))
	assert.Len(t, doc.Units, len(defaultUnits))
	assert.Len(t, doc.Settings, len(defaultSettings))
}

func TestExport_EmptyStoreHasEmptySections(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Export()
	require.NoError(t, err)

	// Recipes are empty but present, never null in the serialized form.
	assert.NotNil(t, doc.Recipes)
	assert.Empty(t, doc.Recipes)
	assert.NotEmpty(t, doc.Categories)
	assert.NotEmpty(t, doc.Units)
	assert.NotEmpty(t, doc.Settings)
}

func TestImport_RoundTripIntoFreshStore(t *testing.T) {
	src := newTestStore(t)
	catID := categoryID(t, src, "Dolci")

	_, err := src.CreateRecipe(tiramisuInput(catID))
	require.NoError(t, err)
	_, err = src.CreateCategory("Conserve")
	require.NoError(t, err)
	require.NoError(t, src.UpdateSettings(map[string]string{"theme": "dark"}))

	doc, err := src.Export()
	require.NoError(t, err)

	dst, err := Open(types.Config{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dst.Close() })

	require.NoError(t, dst.Import(doc))

	got, err := dst.GetRecipe(mustRecipeID(t, dst, "Tiramisù"))
	require.NoError(t, err)
	assert.Equal(t, "Tiramisù", got.Name)
	require.NotNil(t, got.CategoryName)
	assert.Equal(t, "Dolci", *got.CategoryName, "category reference resolved by name")
	require.Len(t, got.Subsections, 1)
	assert.Equal(t, "Crema", got.Subsections[0].Name)
	require.Len(t, got.Subsections[0].Ingredients, 1)
	assert.Equal(t, float64(500), *got.Subsections[0].Ingredients[0].CurrentQuantity)

	categories, err := dst.ListCategories()
	require.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Conserve")

	settings, err := dst.Settings()
	require.NoError(t, err)
	assert.Equal(t, "dark", settings["theme"], "imported settings win")
}

func TestImport_Idempotent(t *testing.T) {
	s := newTestStore(t)
	catID := categoryID(t, s, "Dolci")

	_, err := s.CreateRecipe(tiramisuInput(catID))
	require.NoError(t, err)

	doc, err := s.Export()
	require.NoError(t, err)

	require.NoError(t, s.Import(doc))
	require.NoError(t, s.Import(doc))

	assert.Equal(t, 1, countRows(t, s, "recipes"), "name-matched recipe is updated, not duplicated")
	assert.Equal(t, len(defaultCategories), countRows(t, s, "categories"))
	assert.Equal(t, len(defaultUnits), countRows(t, s, "units"))
	assert.Equal(t, 1, countRows(t, s, "ingredient_subsections"))
	assert.Equal(t, 1, countRows(t, s, "ingredients"))
	assert.Equal(t, 1, countRows(t, s, "preparation_steps"))
}

func TestImport_UpdatesMatchedRecipeInPlace(t *testing.T) {
	s := newTestStore(t)
	catID := categoryID(t, s, "Dolci")

	id, err := s.CreateRecipe(tiramisuInput(catID))
	require.NoError(t, err)

	doc, err := s.Export()
	require.NoError(t, err)

	// A newer version of the same recipe arrives by name.
	doc.Recipes[0].Description = "Versione aggiornata"
	doc.Recipes[0].Subsections[0].Ingredients[0].OriginalQuantity = floatPtr(600)
	doc.Recipes[0].Subsections[0].Ingredients[0].CurrentQuantity = nil

	require.NoError(t, s.Import(doc))

	got, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, "Versione aggiornata", got.Description)
	ing := got.Subsections[0].Ingredients[0]
	assert.Equal(t, float64(600), *ing.OriginalQuantity)
	require.NotNil(t, ing.CurrentQuantity)
	assert.Equal(t, float64(600), *ing.CurrentQuantity, "current falls back to original")
}

func TestImport_UnresolvableCategoryRefDropsToNone(t *testing.T) {
	s := newTestStore(t)

	doc := &types.Document{
		Version: types.DocumentVersion,
		Recipes: []types.Recipe{
			{Name: "Misteriosa", CategoryID: int64Ptr(999)},
		},
		Settings: map[string]string{},
	}
	require.NoError(t, s.Import(doc))

	got, err := s.GetRecipe(mustRecipeID(t, s, "Misteriosa"))
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}

func TestImport_NilDocument(t *testing.T) {
	s := newTestStore(t)

	err := s.Import(nil)
	require.ErrorIs(t, err, types.ErrMalformedDocument)
}

func TestImport_MalformedDocumentLeavesStoreUntouched(t *testing.T) {
	s := newTestStore(t)

	catsBefore := countRows(t, s, "categories")
	recipesBefore := countRows(t, s, "recipes")

	// A valid new category followed by an invalid recipe: nothing from the
	// document may land.
	doc := &types.Document{
		Version:    types.DocumentVersion,
		Categories: []types.Category{{ID: 1, Name: "Sottaceti"}},
		Recipes:    []types.Recipe{{Name: ""}},
		Settings:   map[string]string{},
	}

	err := s.Import(doc)
	require.ErrorIs(t, err, types.ErrMalformedDocument)

	assert.Equal(t, catsBefore, countRows(t, s, "categories"), "category insert rolled back")
	assert.Equal(t, recipesBefore, countRows(t, s, "recipes"))

	categories, err := s.ListCategories()
	require.NoError(t, err)
	for _, c := range categories {
		assert.NotEqual(t, "Sottaceti", c.Name)
	}
}

func TestImport_RejectsEmptyUnitFields(t *testing.T) {
	s := newTestStore(t)

	doc := &types.Document{
		Version: types.DocumentVersion,
		Units:   []types.Unit{{Name: "bicchiere", Abbreviation: ""}},
	}
	err := s.Import(doc)
	require.ErrorIs(t, err, types.ErrMalformedDocument)
}

// mustRecipeID finds a recipe id by name via ListRecipes.
func mustRecipeID(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	summaries, err := s.ListRecipes()
	require.NoError(t, err)
	for _, r := range summaries {
		if r.Name == name {
			return r.ID
		}
	}
	t.Fatalf("recipe %q not found", name)
	return 0
}
