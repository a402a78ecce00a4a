package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (settings database file path)
//	-algorithm default cipher algorithm identifier
//	-iterations default key-derivation iteration count
//	-backend cipher executor backend ("openssl" or "native")
//	-openssl path to the openssl binary
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var defaultAlgorithm string
	var defaultIterations int
	var backend string
	var opensslPath string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&defaultAlgorithm, "algorithm", "", "Default cipher algorithm")
	flag.IntVar(&defaultIterations, "iterations", 0, "Default key-derivation iteration count")
	flag.StringVar(&backend, "backend", "", "Cipher executor backend (openssl or native)")
	flag.StringVar(&opensslPath, "openssl", "", "Path to the openssl binary")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DefaultAlgorithm:  defaultAlgorithm,
			DefaultIterations: defaultIterations,
		},
		Crypto: Crypto{
			Backend:     backend,
			OpenSSLPath: opensslPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
