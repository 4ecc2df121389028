package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		expectErr bool
	}{
		{name: "duration string", input: `"168h"`, expected: 168 * time.Hour},
		{name: "seconds string", input: `"30s"`, expected: 30 * time.Second},
		{name: "number of nanoseconds", input: `3600000000000`, expected: time.Hour},
		{name: "invalid string", input: `"not-a-duration"`, expectErr: true},
		{name: "invalid json", input: `{`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_sign_key": "json-secret",
			"token_issuer":   "json-issuer",
			"token_duration": "72h",
			"bcrypt_cost":    12,
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "postgres",
				"dsn":    "postgres://localhost/noteapp",
			},
		},
		"server": map[string]any{
			"http_address":    ":8080",
			"request_timeout": "30s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/noteapp", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	f := t.TempDir() + "/broken.json"
	require.NoError(t, os.WriteFile(f, []byte("{not json"), 0o600))

	_, err := parseJSON(f)
	assert.Error(t, err)
}
