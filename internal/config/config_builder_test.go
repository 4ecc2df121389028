package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// sources yields defaults for everything except the DSN, which has no sane
// default and must fail validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple sources
// are merged into a single result, with earlier sources winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "file:notes.db", Driver: DriverSQLite}}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "custom-issuer"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "loser-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "file:notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "custom-issuer", cfg.Auth.TokenIssuer, "earlier source must win")
}

// TestBuild_AppliesDefaults verifies that every unset field receives its
// documented default after merging.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/noteapp"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenSignKey, cfg.Auth.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

// TestBuild_UnknownDriverRejected verifies that an unsupported driver name
// fails validation.
func TestBuild_UnknownDriverRejected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Driver: "oracle", DSN: "whatever"}}},
	)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownDBDriver)
}

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is loaded and merged with the lowest priority.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_issuer":   "json-issuer",
			"token_duration": "24h",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "sqlite",
				"dsn":    "file:notes.db",
			},
		},
		"server": map[string]any{
			"http_address": ":9001",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Auth:         Auth{TokenIssuer: "env-issuer"},
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer, "env must take priority over the json file")
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "file:notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9001", cfg.Server.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that a dangling config path surfaces as
// a build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestWithJSON_NoPathIsNoop verifies that the JSON stage does nothing when
// no source provided a file path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/noteapp"}},
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://localhost/noteapp", cfg.Storage.DB.DSN)
}
