package utils

import (
	"encoding/json"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stilllife/model"
)

// Config holds the board settings and the driving loop settings
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CellSize       int           `json:"cell_size"`
	LiveDensity    float64       `json:"live_density"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	PeriodWindow   int           `json:"period_window"`
	Seed           uint64        `json:"seed"` // 0 picks a fresh seed per run
	Render         bool          `json:"render"`
	SnapshotPath   string        `json:"snapshot_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          50,
		Height:         20,
		CellSize:       1,
		LiveDensity:    0.5,
		FrameRate:      10 * time.Millisecond,
		MaxGenerations: 1000,
		PeriodWindow:   2, // still lifes and period-2 oscillators end the run
		Render:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// LoadOrCreateConfig loads the settings file, writing the defaults to it first
// when it does not exist yet
func LoadOrCreateConfig(filename string) (Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		config = DefaultConfig()
		return config, SaveConfig(filename, config)
	}
	return config, err
}

// SaveConfig writes the configuration as indented JSON
func SaveConfig(filename string, config Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[SaveConfig] failed to marshal config")
	}
	if err = os.WriteFile(filename, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "[SaveConfig] failed to write file: %+v", filename)
	}
	return nil
}

// Dimensions derives the board shape from the display size and the cell size
func (c Config) Dimensions() (columns, rows int, err error) {
	if c.CellSize <= 0 {
		return 0, 0, errors.Wrapf(model.ErrInvalidConfiguration, "[Dimensions] cell size must be positive, got %d", c.CellSize)
	}
	if c.LiveDensity < 0 || c.LiveDensity > 1 {
		return 0, 0, errors.Wrapf(model.ErrInvalidConfiguration, "[Dimensions] live density %v outside [0, 1]", c.LiveDensity)
	}

	columns, rows = c.Width/c.CellSize, c.Height/c.CellSize
	if columns <= 0 || rows <= 0 {
		return 0, 0, errors.Wrapf(model.ErrInvalidConfiguration,
			"[Dimensions] %dx%d with cell size %d leaves no cells", c.Width, c.Height, c.CellSize)
	}
	return columns, rows, nil
}
