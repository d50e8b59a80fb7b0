// Package config provides configuration management for the matcher.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP serve mode settings (port, API key, reference roster path)
//   - Log: Logging level and format
//   - Matching: Fuzzy threshold and per-issue confidence penalty
//
// Defaults are declared as 'default' struct tags next to the 'mapstructure'
// keys and bound via reflection, so every key is overridable through the
// environment (e.g. MATCHING_FUZZY_THRESHOLD=0.9).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Matching.FuzzyThreshold)
package config
