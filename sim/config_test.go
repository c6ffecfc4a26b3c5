package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		MachineCount:   2,
		ShiftStartHour: 8,
		ShiftEndHour:   20,
		ProductTypes:   []string{"A", "B"},
		Horizon:        200,
		Seed:           42,
	}
}

func TestConfig_Validate_AcceptsReference(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero machines", func(c *Config) { c.MachineCount = 0 }},
		{"negative machines", func(c *Config) { c.MachineCount = -3 }},
		{"no products", func(c *Config) { c.ProductTypes = nil }},
		{"empty product name", func(c *Config) { c.ProductTypes = []string{"A", ""} }},
		{"duplicate product", func(c *Config) { c.ProductTypes = []string{"A", "A"} }},
		{"negative horizon", func(c *Config) { c.Horizon = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr), "error is %T, want *ConfigError", err)
		})
	}
}
