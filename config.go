package shadertrack

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
)

// Config configures one timeline instance.
type Config struct {
	// DisableGPUBlend hard-cuts textures at t = 0.5 instead of crossfading
	// them with a shader.
	DisableGPUBlend bool `toml:"disable_gpu_blend"`
	// SlotSwapThreshold is the weight above which a slot clip substitutes
	// its material. Zero, set or not, selects DefaultSlotSwapThreshold.
	SlotSwapThreshold float64 `toml:"slot_swap_threshold"`
	// FrameRate is the number of frames per second the Director advances at.
	FrameRate float64 `toml:"frame_rate"`
	// Debug collects per-frame metrics and logs them at debug level.
	Debug bool `toml:"debug"`
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SlotSwapThreshold: DefaultSlotSwapThreshold,
		FrameRate:         60,
		LogLevel:          "warn",
	}
}

// LoadConfig parses TOML data and merges the keys it sets over
// DefaultConfig. Keys set to their zero value keep the default.
func LoadConfig(data []byte) (Config, error) {
	var parsed Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("shadertrack: parse config: %w", err)
	}
	cfg := DefaultConfig()
	if err := copier.CopyWithOption(&cfg, &parsed, copier.Option{IgnoreEmpty: true}); err != nil {
		return Config{}, fmt.Errorf("shadertrack: merge config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the TOML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("shadertrack: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.SlotSwapThreshold < 0 || c.SlotSwapThreshold >= 1 {
		return fmt.Errorf("shadertrack: slot_swap_threshold %v out of range [0, 1), 0 selects the default", c.SlotSwapThreshold)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("shadertrack: frame_rate must be positive, got %v", c.FrameRate)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel. An empty name is warn.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("shadertrack: unknown log_level %q", c.LogLevel)
}
