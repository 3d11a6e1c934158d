package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources fails
// validation: without a token sign key the application must not start.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
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

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier sources winning for non-zero fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth: Auth{TokenSignKey: "first-key", TokenIssuer: "proyecto-api", TokenDuration: time.Hour},
		},
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "second-key"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
			Server:  Server{HTTPAddress: ":3000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://localhost/users", cfg.Storage.DB.DSN)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
}

// TestWithJSON_MergesFileOnTop verifies that a JSON file referenced by an
// earlier source is loaded and appended to the merge chain.
func TestWithJSON_MergesFileOnTop(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"auth": {"token_sign_key": "from-json", "token_issuer": "json-issuer", "token_duration": "2h"},
		"storage": {"db": {"dsn": "postgres://json/users"}},
		"server": {"http_address": "localhost:4000"}
	}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://json/users", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:4000", cfg.Server.HTTPAddress)
}
