package matching

import "fmt"

// Config holds the tunables of the matching engine.
type Config struct {
	// FuzzyThreshold is the minimum combined name similarity for the
	// fuzzy tier, in [0.0, 1.0].
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" default:"0.85"`
	// IssuePenalty is the confidence deduction applied per detected issue.
	IssuePenalty float64 `mapstructure:"issue_penalty" default:"0.05"`
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold: 0.85,
		IssuePenalty:   0.05,
	}
}

// Validate checks the configuration before any matching begins.
func (c Config) Validate() error {
	if c.FuzzyThreshold < 0.0 || c.FuzzyThreshold > 1.0 {
		return fmt.Errorf("fuzzy threshold %v out of range [0.0, 1.0]", c.FuzzyThreshold)
	}
	return nil
}
