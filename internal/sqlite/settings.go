// Settings are a flat key/value map with insert-or-replace semantics and no
// validation beyond string identity.
package sqlite

import (
	"database/sql"
	"fmt"
)

// Settings returns the full settings map.
func (s *Store) Settings() (map[string]string, error) {
	settings := map[string]string{}
	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT key, value FROM settings")
		if err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var key string
			var value sql.NullString
			if err := rows.Scan(&key, &value); err != nil {
				return fmt.Errorf("scanning setting: %w", err)
			}
			settings[key] = value.String
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings upserts each key/value pair in one transaction.
func (s *Store) UpdateSettings(values map[string]string) error {
	return s.withTx(func(tx *sql.Tx) error {
		for key, value := range values {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
				key, value,
			); err != nil {
				return fmt.Errorf("upserting setting %s: %w", key, err)
			}
		}
		return nil
	})
}
