package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

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

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder yields a config with
// every handshake field set to NONE.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, None, cfg.Auth.HeaderName)
	assert.Equal(t, None, cfg.Auth.Token)
	assert.Equal(t, None, cfg.Auth.CallUniqueID)
	assert.Equal(t, []string{None}, cfg.Auth.PathPatterns)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, defaultAdapterTimeout, cfg.Adapter.RequestTimeout)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourcesWin verifies that fields set by an earlier config
// are kept and later configs only fill empty fields.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:   Auth{HeaderName: "X-Env-Auth", Token: "env-secret", PathPatterns: []string{"/env/**"}},
			Server: Server{HTTPAddress: ":8080"},
		},
		&StructuredConfig{
			Auth: Auth{HeaderName: "X-Flag-Auth"},
		},
		&StructuredConfig{
			Auth:    Auth{PathPatterns: []string{"/json/**", "/api/internal/**"}, CallUniqueID: "orders-service"},
			Adapter: Adapter{HTTPAddress: "billing:8081"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "X-Env-Auth", cfg.Auth.HeaderName)
	assert.Equal(t, "env-secret", cfg.Auth.Token)
	assert.Equal(t, []string{"/env/**"}, cfg.Auth.PathPatterns)
	assert.Equal(t, "orders-service", cfg.Auth.CallUniqueID)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "billing:8081", cfg.Adapter.HTTPAddress)
}

// TestBuild_RejectsHeaderWithoutToken verifies the auth invariant.
func TestBuild_RejectsHeaderWithoutToken(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{HeaderName: "X-Service-Auth"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("AUTH_HEADER_NAME", "X-Service-Auth")
	t.Setenv("AUTH_TOKEN", "123455")
	t.Setenv("AUTH_PATH_PATTERNS", "/api/internal/**,/api/orders")
	t.Setenv("AUTH_CALL_UNIQUE_ID", "orders-service")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_ADDRESS", "http://billing:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("APP_LOG_LEVEL", "info")
	t.Setenv("CONFIG", "/path/to/config.json")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "X-Service-Auth", cfg.Auth.HeaderName)
	assert.Equal(t, "123455", cfg.Auth.Token)
	assert.Equal(t, []string{"/api/internal/**", "/api/orders"}, cfg.Auth.PathPatterns)
	assert.Equal(t, "orders-service", cfg.Auth.CallUniqueID)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://billing:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EnvPathPatternsAreTrimmed verifies cleanup of env lists.
func TestBuild_EnvPathPatternsAreTrimmed(t *testing.T) {
	t.Setenv("AUTH_PATH_PATTERNS", "/api/internal/**, /api/orders,,")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/internal/**", "/api/orders"}, cfg.Auth.PathPatterns)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-auth-header", "X-Service-Auth"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "X-Service-Auth", b.configs[0].Auth.HeaderName)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Auth.HeaderName = "X-Json-Auth"
	payload.Auth.Token = "json-secret"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "X-Json-Auth", b.configs[1].Auth.HeaderName)
	assert.Equal(t, "json-secret", b.configs[1].Auth.Token)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_EnvOverridesFlagsOverridesJSON checks the documented priority.
func TestChain_EnvOverridesFlagsOverridesJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Auth.HeaderName = "X-JSON-Auth"
	payload.Auth.PathPatterns = []string{"/api/internal/**"}
	path := writeTempJSONConfig(t, payload)

	t.Setenv("AUTH_HEADER_NAME", "X-Env-Auth")
	t.Setenv("AUTH_TOKEN", "env-secret")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-auth-header", "X-Flag-Auth", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "X-Env-Auth", cfg.Auth.HeaderName)
	assert.Equal(t, "env-secret", cfg.Auth.Token)
	assert.Equal(t, []string{"/api/internal/**"}, cfg.Auth.PathPatterns)
	assert.Equal(t, None, cfg.Auth.CallUniqueID)
}
