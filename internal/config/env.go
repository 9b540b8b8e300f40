package config

import "os"

// Environment variable overrides. Process environment wins over the YAML file so
// deployments can keep credentials out of config files.
const (
	envProjectID  = "EMBEROAK_PROJECT_ID"
	envDataset    = "EMBEROAK_DATASET"
	envAPIVersion = "EMBEROAK_API_VERSION"
	envToken      = "SANITY_TOKEN"
	envAddr       = "EMBEROAK_ADDR"
)

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envProjectID); v != "" {
		cfg.Content.ProjectID = v
	}
	if v := os.Getenv(envDataset); v != "" {
		cfg.Content.Dataset = v
	}
	if v := os.Getenv(envAPIVersion); v != "" {
		cfg.Content.APIVersion = v
	}
	if v := os.Getenv(envToken); v != "" {
		cfg.Content.Token = v
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Server.Addr = v
	}
}
