// Package config defines application settings and how they are loaded.
package config

import "fmt"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile enables a rotating log file in addition to stderr. Empty disables it.
	LogFile string `koanf:"log_file"`

	WindowWidth  float32 `koanf:"window_width"`
	WindowHeight float32 `koanf:"window_height"`

	// ChartHeightMinCm and ChartHeightMaxCm bound the BMI chart's height axis.
	ChartHeightMinCm float64 `koanf:"chart_height_min_cm"`
	ChartHeightMaxCm float64 `koanf:"chart_height_max_cm"`

	// ChartWeightMaxKg is the top of the BMI chart's weight axis.
	ChartWeightMaxKg float64 `koanf:"chart_weight_max_kg"`

	// ChartBFPMax is the right edge of the body fat chart, in percent.
	ChartBFPMax float64 `koanf:"chart_bfp_max"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		WindowWidth:      1100,
		WindowHeight:     720,
		ChartHeightMinCm: 140,
		ChartHeightMaxCm: 210,
		ChartWeightMaxKg: 300,
		ChartBFPMax:      55,
	}
}

// Validate checks window size and chart ranges.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %vx%v", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.ChartHeightMinCm <= 0 || c.ChartHeightMaxCm <= c.ChartHeightMinCm {
		return fmt.Errorf("%w: chart height range must be positive and increasing, got %v..%v",
			ErrInvalidConfig, c.ChartHeightMinCm, c.ChartHeightMaxCm)
	}
	if c.ChartWeightMaxKg <= 0 {
		return fmt.Errorf("%w: chart weight max must be positive, got %v", ErrInvalidConfig, c.ChartWeightMaxKg)
	}
	if c.ChartBFPMax <= 0 {
		return fmt.Errorf("%w: chart body fat max must be positive, got %v", ErrInvalidConfig, c.ChartBFPMax)
	}
	return nil
}
