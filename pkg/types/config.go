package types

import "errors"

// Default file and logging settings used when Config fields are empty.
const (
	DefaultDatabaseFile = "ricettario.db"
	DefaultLogLevel     = "info"
)

// Config holds the parameters for opening a Store.
type Config struct {
	// DataDir is the directory holding the database file. Created on open
	// if it does not exist. Empty means the current directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseFile is the database file name inside DataDir.
	// Empty means DefaultDatabaseFile.
	DatabaseFile string `json:"database_file" yaml:"database_file"`

	// LogLevel selects the logging verbosity: debug, info, warn or error.
	// Empty means DefaultLogLevel.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Config validation errors.
var (
	ErrLogLevelUnknown     = errors.New("unknown log level")
	ErrDatabaseFileInvalid = errors.New("database file must be a bare file name")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	for _, r := range c.DatabaseFile {
		if r == '/' || r == '\\' {
			return ErrDatabaseFileInvalid
		}
	}
	return nil
}
