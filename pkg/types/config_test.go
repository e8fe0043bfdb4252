package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "zero value",
			config: Config{},
		},
		{
			name:   "complete",
			config: Config{DataDir: "/tmp/recipes", DatabaseFile: "catalog.db", LogLevel: "debug"},
		},
		{
			name:    "unknown log level",
			config:  Config{LogLevel: "verbose"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "database file with path separator",
			config:  Config{DatabaseFile: "nested/catalog.db"},
			wantErr: ErrDatabaseFileInvalid,
		},
		{
			name:    "database file with backslash",
			config:  Config{DatabaseFile: `nested\catalog.db`},
			wantErr: ErrDatabaseFileInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
