package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

// Config provides configuration for the draw poker server
type Config struct {
	loaded         bool
	Addr           string        `yaml:"addr" envconfig:"addr"`
	PGDSN          string        `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string        `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            LogConfig     `yaml:"log"`
	Game           GameConfig    `yaml:"game"`
	History        HistoryConfig `yaml:"history"`
}

// LogConfig configures logging
type LogConfig struct {
	Level             string `yaml:"level" envconfig:"level"`
	Format            string `yaml:"format" envconfig:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// GameConfig configures every session
type GameConfig struct {
	StartingStake int `yaml:"startingStake" envconfig:"starting_stake"`
	Ante          int `yaml:"ante" envconfig:"ante"`
}

// HistoryConfig configures where completed games are recorded
type HistoryConfig struct {
	// Enabled stores results in PostgreSQL, otherwise they are kept in memory
	Enabled    bool `yaml:"enabled" envconfig:"enabled"`
	BufferSize int  `yaml:"bufferSize" envconfig:"buffer_size"`
}

// Options returns the session options
func (g GameConfig) Options() fivecarddraw.Options {
	return fivecarddraw.Options{
		StartingStake: g.StartingStake,
		Ante:          g.Ante,
	}
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := fivecarddraw.DefaultOptions()

	return Config{
		Addr:           ":5000",
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Game: GameConfig{
			StartingStake: opts.StartingStake,
			Ante:          opts.Ante,
		},
		History: HistoryConfig{
			BufferSize: 256,
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional. Environment variables take precedence over it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("DRAWPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("drawpoker", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
