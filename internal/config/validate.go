package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 1 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 1 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Chain.Validate(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}

	if c.Quiz.MaxTokens <= 0 {
		return fmt.Errorf("quiz.max_tokens must be > 0 (got %d)", c.Quiz.MaxTokens)
	}

	if c.Rewards.SweepTimeout <= 0 {
		return fmt.Errorf("rewards.sweep_timeout must be > 0 (got %v)", c.Rewards.SweepTimeout)
	}

	return nil
}
