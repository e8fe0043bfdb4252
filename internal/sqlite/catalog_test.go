package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cucina-labs/ricettario/pkg/types"
)

func TestCreateCategory(t *testing.T) {
	s := newTestStore(t)
	before := countRows(t, s, "categories")

	id, err := s.CreateCategory("Conserve")
	require.NoError(t, err)
	require.Positive(t, id)
	assert.Equal(t, before+1, countRows(t, s, "categories"))

	categories, err := s.ListCategories()
	require.NoError(t, err)
	found := false
	for _, c := range categories {
		if c.ID == id {
			found = true
			assert.Equal(t, "Conserve", c.Name)
		}
	}
	assert.True(t, found)
}

func TestCreateCategory_RejectsDuplicateName(t *testing.T) {
	s := newTestStore(t)
	before := countRows(t, s, "categories")

	// "Dolci" is seeded.
	_, err := s.CreateCategory("Dolci")
	require.ErrorIs(t, err, types.ErrDuplicateName)
	assert.Equal(t, before, countRows(t, s, "categories"), "table unchanged after rejection")
}

func TestCreateCategory_RejectsEmptyName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateCategory("")
	require.ErrorIs(t, err, types.ErrInvalidName)
}

func TestDeleteCategory_ClearsRecipeReference(t *testing.T) {
	s := newTestStore(t)

	catID, err := s.CreateCategory("Fritture")
	require.NoError(t, err)

	recipeID, err := s.CreateRecipe(types.RecipeInput{
		Name:       "Arancini",
		CategoryID: &catID,
	})
	require.NoError(t, err)

	deleted, err := s.DeleteCategory(catID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The recipe survives with its category reference cleared.
	got, err := s.GetRecipe(recipeID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.CategoryName)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	s := newTestStore(t)

	deleted, err := s.DeleteCategory(424242)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateUnit(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateUnit("bicchiere", "bicchiere")
	require.NoError(t, err)
	require.Positive(t, id)

	units, err := s.ListUnits()
	require.NoError(t, err)
	found := false
	for _, u := range units {
		if u.ID == id {
			found = true
			assert.Equal(t, "bicchiere", u.Name)
			assert.Equal(t, "bicchiere", u.Abbreviation)
		}
	}
	assert.True(t, found)
}

func TestCreateUnit_RejectsDuplicateAbbreviation(t *testing.T) {
	s := newTestStore(t)
	before := countRows(t, s, "units")

	// "g" is seeded as grammi. Uniqueness is on the abbreviation, so a
	// different name does not help.
	_, err := s.CreateUnit("grams", "g")
	require.ErrorIs(t, err, types.ErrDuplicateName)
	assert.Equal(t, before, countRows(t, s, "units"))
}

func TestCreateUnit_RejectsEmptyFields(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUnit("", "x")
	require.ErrorIs(t, err, types.ErrInvalidName)

	_, err = s.CreateUnit("x", "")
	require.ErrorIs(t, err, types.ErrInvalidName)
}

func TestDeleteUnit(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateUnit("manciata", "manciata")
	require.NoError(t, err)

	deleted, err := s.DeleteUnit(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteUnit(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
