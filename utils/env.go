package utils

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment keys that override the settings file
const (
	EnvWidth          = "LIFE_WIDTH"
	EnvHeight         = "LIFE_HEIGHT"
	EnvCellSize       = "LIFE_CELL_SIZE"
	EnvLiveDensity    = "LIFE_LIVE_DENSITY"
	EnvSeed           = "LIFE_SEED"
	EnvMaxGenerations = "LIFE_MAX_GENERATIONS"
)

var envKeys = []string{EnvWidth, EnvHeight, EnvCellSize, EnvLiveDensity, EnvSeed, EnvMaxGenerations}

// LoadOverrides collects LIFE_* settings from an optional .env file and the
// process environment. Process variables win over the file.
func LoadOverrides(envFile string) (map[string]string, error) {
	overrides := make(map[string]string)

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, errors.Wrapf(err, "[LoadOverrides] failed to read env file: %+v", envFile)
		default:
			for _, key := range envKeys {
				if v, ok := values[key]; ok {
					overrides[key] = v
				}
			}
		}
	}

	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			overrides[key] = v
		}
	}

	return overrides, nil
}

// Apply overwrites settings with the given overrides
func (c *Config) Apply(overrides map[string]string) error {
	ints := map[string]*int{
		EnvWidth:          &c.Width,
		EnvHeight:         &c.Height,
		EnvCellSize:       &c.CellSize,
		EnvMaxGenerations: &c.MaxGenerations,
	}
	for key, dst := range ints {
		raw, ok := overrides[key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "[Apply] %s=%q", key, raw)
		}
		*dst = v
	}

	if raw, ok := overrides[EnvLiveDensity]; ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "[Apply] %s=%q", EnvLiveDensity, raw)
		}
		c.LiveDensity = v
	}
	if raw, ok := overrides[EnvSeed]; ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "[Apply] %s=%q", EnvSeed, raw)
		}
		c.Seed = v
	}

	return nil
}
