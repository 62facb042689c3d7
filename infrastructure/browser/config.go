package browser

import (
	"os"
	"strconv"
)

// Config holds browser launch options, sourced from BROWSER_* environment
// variables. Callers typically load a .env file first.
type Config struct {
	Headless   bool
	SlowMoMs   float64
	UserAgent  string
	DriverPath string // chromedriver path, selenium controller only
	DriverPort int    // chromedriver port, selenium controller only
}

// ConfigFromEnv - builds a Config from environment variables
func ConfigFromEnv() Config {
	cfg := Config{
		Headless:   true,
		DriverPort: 9515,
	}

	if v := os.Getenv("BROWSER_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Headless = b
		}
	}
	if v := os.Getenv("BROWSER_SLOWMO_MS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SlowMoMs = f
		}
	}
	cfg.UserAgent = os.Getenv("BROWSER_USER_AGENT")
	cfg.DriverPath = os.Getenv("BROWSER_DRIVER_PATH")
	if v := os.Getenv("BROWSER_DRIVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.DriverPort = p
		}
	}

	return cfg
}
