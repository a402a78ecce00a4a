package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
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
// are merged into a single result, with the earlier config winning for
// fields both define.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App: App{DefaultAlgorithm: "aes-256-cbc"},
		},
		&StructuredConfig{
			App:    App{DefaultAlgorithm: "aes-128-cbc", DefaultIterations: 5000},
			Crypto: Crypto{Backend: BackendNative},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "aes-256-cbc", cfg.App.DefaultAlgorithm, "first non-zero value wins")
	assert.Equal(t, 5000, cfg.App.DefaultIterations)
	assert.Equal(t, BackendNative, cfg.Crypto.Backend)
}

// TestWithJSON_NoPathConfigured verifies that withJSON is a no-op when no
// source provided a JSON path.
func TestWithJSON_NoPathConfigured(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that a configured but missing
// JSON file surfaces as a builder error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()

	require.Error(t, b.err)
}

// ── AppConfig ────────────────────────────────────────────────────────────────

func TestAppConfig_ApplyDefaults(t *testing.T) {
	cfg := &AppConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "aes-256-cbc", cfg.Defaults.Algorithm)
	assert.Equal(t, 10000, cfg.Defaults.Iterations)
	assert.Equal(t, BackendOpenSSL, cfg.Crypto.Backend)
	assert.Equal(t, "encryptify.db", cfg.Storage.DB.DSN)
}

func TestAppConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &AppConfig{
		Defaults: AppDefaults{Algorithm: "aes-128-cbc", Iterations: 777},
		Crypto:   AppCrypto{Backend: BackendNative},
		Storage:  AppStorage{DB: AppDB{DSN: "/tmp/custom.db"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "aes-128-cbc", cfg.Defaults.Algorithm)
	assert.Equal(t, 777, cfg.Defaults.Iterations)
	assert.Equal(t, BackendNative, cfg.Crypto.Backend)
	assert.Equal(t, "/tmp/custom.db", cfg.Storage.DB.DSN)
}

func TestAppConfig_Validate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Defaults: AppDefaults{Algorithm: "aes-256-cbc", Iterations: 10000},
			Crypto:   AppCrypto{Backend: BackendOpenSSL},
			Storage:  AppStorage{DB: AppDB{DSN: "encryptify.db"}},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Defaults.Iterations = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = valid()
	cfg.Defaults.Algorithm = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = valid()
	cfg.Crypto.Backend = "hardware"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidCryptoConfigs)
}
