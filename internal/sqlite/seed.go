// Default rows seeded on first open. Seeding uses INSERT OR IGNORE against
// the tables' unique keys, so it is idempotent across reopens and never
// overwrites rows the user has changed.
package sqlite

import (
	"database/sql"
	"fmt"
)

// defaultSetting is one seeded settings key/value pair.
type defaultSetting struct {
	key   string
	value string
}

// defaultUnit is one seeded measurement unit.
type defaultUnit struct {
	name         string
	abbreviation string
}

var defaultSettings = []defaultSetting{
	{"theme", "light"},
	{"font", "sans-serif"},
	{"date_format", "DD/MM/YYYY"},
	{"spacing", "comfortable"},
	{"language", "it"},
}

var defaultCategories = []string{
	"Antipasti", "Primi Piatti", "Secondi Piatti", "Contorni",
	"Dolci", "Bevande", "Colazione", "Snack", "Salse", "Pane e Lievitati",
}

var defaultUnits = []defaultUnit{
	{"grammi", "g"},
	{"chilogrammi", "kg"},
	{"millilitri", "ml"},
	{"litri", "L"},
	{"cucchiaino", "cucchiaino"},
	{"cucchiaio", "cucchiaio"},
	{"tazza", "tazza"},
	{"pezzi", "pz"},
	{"fette", "fette"},
	{"spicchi", "spicchi"},
	{"pizzico", "pizzico"},
	{"q.b.", "q.b."},
	{"unità", "unità"},
	{"mazzetto", "mazzetto"},
	{"foglie", "foglie"},
	{"rametti", "rametti"},
}

// seedDefaults inserts the default settings, categories and units that are
// not already present. Runs inside the schema initialization transaction.
func seedDefaults(tx *sql.Tx) error {
	for _, s := range defaultSettings {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)",
			s.key, s.value,
		); err != nil {
			return fmt.Errorf("seeding setting %s: %w", s.key, err)
		}
	}
	for _, name := range defaultCategories {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO categories (name) VALUES (?)", name,
		); err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
	}
	for _, u := range defaultUnits {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO units (name, abbreviation) VALUES (?, ?)",
			u.name, u.abbreviation,
		); err != nil {
			return fmt.Errorf("seeding unit %s: %w", u.abbreviation, err)
		}
	}
	return nil
}
