// Category and unit catalog operations. Both are flat lookup tables.
// Categories are referenced weakly by recipes; units are informational only
// and never referenced by key.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cucina-labs/ricettario/pkg/types"
)

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories() ([]types.Category, error) {
	categories := []types.Category{}
	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, name FROM categories ORDER BY name")
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c types.Category
			if err := rows.Scan(&c.ID, &c.Name); err != nil {
				return fmt.Errorf("scanning category: %w", err)
			}
			categories = append(categories, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category. An empty name is rejected before any
// write; a name already in use is reported as types.ErrDuplicateName and
// leaves the table unchanged.
func (s *Store) CreateCategory(name string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}

	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		var dupID int64
		err := tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&dupID)
		if err == nil {
			return types.ErrDuplicateName
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking category name uniqueness: %w", err)
		}

		res, err := tx.Exec("INSERT INTO categories (name) VALUES (?)", name)
		if err != nil {
			return fmt.Errorf("inserting category: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading category id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("category created", zap.Int64("id", id), zap.String("name", name))
	return id, nil
}

// DeleteCategory removes a category. The schema clears category_id on any
// recipe that referenced it; recipes themselves are never deleted. The bool
// reports whether a row existed.
func (s *Store) DeleteCategory(id int64) (bool, error) {
	return s.deleteByID("categories", id)
}

// ListUnits returns all units ordered by name.
func (s *Store) ListUnits() ([]types.Unit, error) {
	units := []types.Unit{}
	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, name, abbreviation FROM units ORDER BY name")
		if err != nil {
			return fmt.Errorf("listing units: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var u types.Unit
			if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation); err != nil {
				return fmt.Errorf("scanning unit: %w", err)
			}
			units = append(units, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

// CreateUnit inserts a unit. Empty name or abbreviation is rejected before
// any write; an abbreviation already in use is reported as
// types.ErrDuplicateName.
func (s *Store) CreateUnit(name, abbreviation string) (int64, error) {
	if name == "" || abbreviation == "" {
		return 0, types.ErrInvalidName
	}

	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		var dupID int64
		err := tx.QueryRow("SELECT id FROM units WHERE abbreviation = ?", abbreviation).Scan(&dupID)
		if err == nil {
			return types.ErrDuplicateName
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking unit abbreviation uniqueness: %w", err)
		}

		res, err := tx.Exec("INSERT INTO units (name, abbreviation) VALUES (?, ?)", name, abbreviation)
		if err != nil {
			return fmt.Errorf("inserting unit: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading unit id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("unit created", zap.Int64("id", id), zap.String("abbreviation", abbreviation))
	return id, nil
}

// DeleteUnit removes a unit. Nothing references units by key, so there is
// no cascade. The bool reports whether a row existed.
func (s *Store) DeleteUnit(id int64) (bool, error) {
	return s.deleteByID("units", id)
}

// deleteByID deletes one row from a catalog table and reports whether a row
// was removed.
func (s *Store) deleteByID(table string, id int64) (bool, error) {
	var deleted bool
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM "+table+" WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting from %s: %w", table, err)
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
	return deleted, nil
}
