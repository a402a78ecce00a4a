package config

import "fmt"

// Built-in fallbacks applied when no source configures a value.
const (
	defaultDSN        = "encryptify.db"
	defaultAlgorithm  = "aes-256-cbc"
	defaultIterations = 10000
	defaultBackend    = BackendOpenSSL
)

// AppDefaults holds user-facing defaults for the interactive forms.
type AppDefaults struct {
	// Algorithm is the preselected cipher algorithm identifier.
	Algorithm string
	// Iterations is the prefilled key-derivation iteration count.
	Iterations int
}

// AppCrypto holds cipher executor settings.
type AppCrypto struct {
	// Backend selects the executor implementation.
	Backend string
	// OpenSSLPath is the binary used by the openssl backend.
	OpenSSLPath string
}

// AppDB contains settings database connection settings.
type AppDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// AppStorage groups storage backend settings.
type AppStorage struct {
	// DB holds settings database settings.
	DB AppDB
}

// AppConfig is the top-level application configuration assembled from
// [StructuredConfig].
type AppConfig struct {
	// Defaults contains user-facing form defaults.
	Defaults AppDefaults
	// Crypto contains cipher executor settings.
	Crypto AppCrypto
	// Storage contains settings database settings.
	Storage AppStorage
}

// GetAppConfig builds and validates the application config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], applies built-in
// fallbacks for anything left unset, and validates the resulting
// [AppConfig].
func GetAppConfig() (*AppConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	appCfg := &AppConfig{
		Defaults: AppDefaults{
			Algorithm:  cfg.App.DefaultAlgorithm,
			Iterations: cfg.App.DefaultIterations,
		},
		Crypto: AppCrypto{
			Backend:     cfg.Crypto.Backend,
			OpenSSLPath: cfg.Crypto.OpenSSLPath,
		},
		Storage: AppStorage{
			DB: AppDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
	appCfg.applyDefaults()

	return appCfg, appCfg.validate()
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Defaults.Algorithm == "" {
		cfg.Defaults.Algorithm = defaultAlgorithm
	}
	if cfg.Defaults.Iterations == 0 {
		cfg.Defaults.Iterations = defaultIterations
	}
	if cfg.Crypto.Backend == "" {
		cfg.Crypto.Backend = defaultBackend
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
}
