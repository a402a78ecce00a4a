// SPDX-License-Identifier: Apache-2.0

package config

// StructuredConfig is the top-level configuration container for encryptify.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the default cipher
	// algorithm and iteration count offered to the user.
	App App `envPrefix:"APP_"`

	// Crypto holds the cipher executor backend selection.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds configuration for the settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level defaults presented in the interactive forms.
type App struct {
	// DefaultAlgorithm is the cipher algorithm preselected in the
	// algorithm picker. Overridden at runtime by the persisted last-used
	// algorithm once one exists.
	// Env: APP_DEFAULT_ALGORITHM
	DefaultAlgorithm string `env:"DEFAULT_ALGORITHM"`

	// DefaultIterations is the key-derivation iteration count prefilled
	// in the credentials form.
	// Env: APP_DEFAULT_ITERATIONS
	DefaultIterations int `env:"DEFAULT_ITERATIONS"`
}

// Crypto selects which cipher executor implementation performs transforms.
type Crypto struct {
	// Backend is either [BackendOpenSSL] (external `openssl enc` process)
	// or [BackendNative] (in-process implementation of the same format).
	// Env: CRYPTO_BACKEND
	Backend string `env:"BACKEND"`

	// OpenSSLPath is the openssl binary invoked by the openssl backend.
	// Empty means "openssl" resolved via PATH.
	// Env: CRYPTO_OPENSSL_PATH
	OpenSSLPath string `env:"OPENSSL_PATH"`
}

// Storage groups the configuration for all persistence backends used by the
// application.
type Storage struct {
	// DB holds the settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the settings database.
type DB struct {
	// DSN is the SQLite database file path
	// (e.g. "encryptify.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cipher executor backend identifiers accepted by [Crypto.Backend].
const (
	BackendOpenSSL = "openssl"
	BackendNative  = "native"
)

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
