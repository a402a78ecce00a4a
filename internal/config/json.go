package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		DefaultAlgorithm  string `json:"default_algorithm"`
		DefaultIterations int    `json:"default_iterations"`
	} `json:"app,omitempty"`

	Crypto struct {
		Backend     string `json:"backend"`
		OpenSSLPath string `json:"openssl_path"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultAlgorithm:  jsonCfg.App.DefaultAlgorithm,
			DefaultIterations: jsonCfg.App.DefaultIterations,
		},
		Crypto: Crypto{
			Backend:     jsonCfg.Crypto.Backend,
			OpenSSLPath: jsonCfg.Crypto.OpenSSLPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
