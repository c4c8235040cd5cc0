// internal/workers/car-check/config.go
package carcheck

import "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"

type Config struct {
	MinConfidence float64
	Slot          string
}

func LoadConfig(cfg config.CarCheckConfig) *Config {
	c := &Config{
		MinConfidence: cfg.MinConfidence,
		Slot:          cfg.Slot,
	}
	if c.MinConfidence <= 0 {
		c.MinConfidence = DefaultMinConfidence
	}
	if c.Slot == "" {
		c.Slot = DefaultSlot
	}
	return c
}
