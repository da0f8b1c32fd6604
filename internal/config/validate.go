package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	// Empty salt falls back to the insecure built-in default, which is
	// allowed; a short explicit salt is a configuration mistake.
	if s := c.Auth.TokenSalt; s != "" && len(s) < 16 {
		return fmt.Errorf("auth.token_salt must be at least 16 characters (got %d)", len(s))
	}

	if c.Submission.DoubleSubmitWindow <= 0 {
		return fmt.Errorf("submission.double_submit_window must be > 0 (got %v)", c.Submission.DoubleSubmitWindow)
	}
	if c.Submission.CooldownDays <= 0 {
		return fmt.Errorf("submission.cooldown_days must be > 0 (got %d)", c.Submission.CooldownDays)
	}
	if c.Submission.AccessMonths <= 0 {
		return fmt.Errorf("submission.access_months must be > 0 (got %d)", c.Submission.AccessMonths)
	}

	if c.Server.RatePerMinute <= 0 {
		return fmt.Errorf("server.rate_per_minute must be > 0 (got %d)", c.Server.RatePerMinute)
	}

	return nil
}
