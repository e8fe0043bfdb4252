// Store lifecycle tests: open, close, reopen persistence.
package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/pkg/types"
)

// newTestStore opens a store in a fresh temp directory and closes it when
// the test finishes.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }

// countRows returns the row count of a table, bypassing the Store API.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "catalog")
	s, err := Open(types.Config{DataDir: dir}, nil)
	require.NoError(t, err)
	defer s.Close()

	require.FileExists(t, filepath.Join(dir, types.DefaultDatabaseFile))
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir(), LogLevel: "loud"}, nil)
	require.ErrorIs(t, err, types.ErrLogLevelUnknown)

	_, err = Open(types.Config{DataDir: t.TempDir(), DatabaseFile: "a/b.db"}, nil)
	require.ErrorIs(t, err, types.ErrDatabaseFileInvalid)
}

func TestClose_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestOperationsAfterClose(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.ListRecipes()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.CreateRecipe(types.RecipeInput{Name: "Pane"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Export()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	err = s.Import(&types.Document{})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestReopen_PersistsData(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{DataDir: dir}, nil)
	require.NoError(t, err)
	id, err := s.CreateRecipe(types.RecipeInput{
		Name: "Focaccia",
		Steps: []types.StepInput{
			{Description: "Impastare"},
			{Description: "Cuocere"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(types.Config{DataDir: dir}, nil)
	require.NoError(t, err)
	defer s.Close()

	recipe, err := s.GetRecipe(id)
	require.NoError(t, err)
	assert.Equal(t, "Focaccia", recipe.Name)
	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, "Cuocere", recipe.Steps[1].Description)
}

func TestGetRecipe_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRecipe(4242)
	require.True(t, errors.Is(err, types.ErrNotFound), "want ErrNotFound, got %v", err)
}
