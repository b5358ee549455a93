package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"allowed_email_domains": [".edu", "campus.example.org"]
		},
		"adapter": {
			"http_address": "https://api.campushub.example",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "session.db" }
		},
		"workers": {
			"refresh_interval": "5m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{".edu", "campus.example.org"}, cfg.App.AllowedEmailDomains)
	assert.Equal(t, "https://api.campushub.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations may also arrive as raw nanosecond numbers.
	jsonBody := `{"adapter": {"request_timeout": 30000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultEmailDomains, cfg.App.AllowedEmailDomains)

	require.NoError(t, cfg.validate())
}

func TestClientConfig_ValidateRejectsInMemoryDSN(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Storage.DB.DSN = ":memory:"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
