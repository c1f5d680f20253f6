package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/Continents/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Match   MatchConfig   `mapstructure:"match"`
	Planner PlannerConfig `mapstructure:"planner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MatchConfig describes the table: the map, the seats and the rule knobs.
// Zero MaxTurns means the default for the player count. An empty Layout
// makes the driver generate one of Width x Height.
type MatchConfig struct {
	Layout         []string       `mapstructure:"layout"`
	Width          int            `mapstructure:"width"`
	Height         int            `mapstructure:"height"`
	Players        []PlayerConfig `mapstructure:"players"`
	MaxTurns       int            `mapstructure:"max_turns"`
	StartingArmies int            `mapstructure:"starting_armies"`
	MaxArmies      int            `mapstructure:"max_armies"`
	MaxCities      int            `mapstructure:"max_cities"`
	OfferSize      int            `mapstructure:"offer_size"`
	DeckFile       string         `mapstructure:"deck_file"`
	Seed           int64          `mapstructure:"seed"`
	StartTiles     []TileConfig   `mapstructure:"start_tiles"`
}

// PlayerConfig holds one seat
type PlayerConfig struct {
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"`
}

// TileConfig is a board coordinate
type TileConfig struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// PlannerConfig holds Monte-Carlo planner settings
type PlannerConfig struct {
	Rollouts        int `mapstructure:"rollouts"`
	MaxPlayoutSteps int `mapstructure:"max_playout_steps"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Match defaults
	v.SetDefault("match.layout", []string{})
	v.SetDefault("match.width", 8)
	v.SetDefault("match.height", 6)
	v.SetDefault("match.players", []map[string]interface{}{
		{"name": "Player 1", "kind": "automated"},
		{"name": "Player 2", "kind": "automated"},
	})
	v.SetDefault("match.max_turns", 0)
	v.SetDefault("match.starting_armies", 3)
	v.SetDefault("match.max_armies", 14)
	v.SetDefault("match.max_cities", 3)
	v.SetDefault("match.offer_size", 6)
	v.SetDefault("match.deck_file", "")
	v.SetDefault("match.seed", 0)

	// Planner defaults
	v.SetDefault("planner.rollouts", 20)
	v.SetDefault("planner.max_playout_steps", 5000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/continents")
	}

	v.SetEnvPrefix("CONTINENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	return Validate(cfg)
}

// Set overrides a single key at runtime. The override outlives config
// reloads. If the result does not validate, the previous config stays in use.
func Set(key string, value interface{}) error {
	prev := v.Get(key)
	v.Set(key, value)
	next := &Config{}
	err := v.Unmarshal(next)
	if err == nil {
		err = Validate(next)
	}
	if err != nil {
		v.Set(key, prev)
		return fmt.Errorf("set %s: %w", key, err)
	}
	cfg = next
	return nil
}

// isNotFound reports a missing config file, whether viper searched for it or
// was handed its path.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reloaded config
// that fails validation is reported to onError and the previous one kept.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	m := c.Match
	if len(m.Layout) == 0 && (m.Width <= 0 || m.Height <= 0) {
		return fmt.Errorf("match.width and match.height must be positive when no layout is given")
	}
	for i, row := range m.Layout {
		if len(row) != len(m.Layout[0]) {
			return fmt.Errorf("match.layout row %d has length %d, want %d", i, len(row), len(m.Layout[0]))
		}
	}
	if len(m.Players) < 2 || len(m.Players) > common.MaxPlayers {
		return fmt.Errorf("match.players must list between 2 and %d players", common.MaxPlayers)
	}
	for i, p := range m.Players {
		switch strings.ToLower(p.Kind) {
		case "human", "automated":
		default:
			return fmt.Errorf("match.players[%d].kind must be human or automated, got %q", i, p.Kind)
		}
	}
	if m.MaxTurns < 0 {
		return fmt.Errorf("match.max_turns must be non-negative")
	}
	if m.StartingArmies < 1 {
		return fmt.Errorf("match.starting_armies must be at least 1")
	}
	if m.MaxArmies < m.StartingArmies {
		return fmt.Errorf("match.max_armies must be at least match.starting_armies")
	}
	if m.MaxCities < 1 {
		return fmt.Errorf("match.max_cities must be at least 1")
	}
	if m.OfferSize < 1 {
		return fmt.Errorf("match.offer_size must be at least 1")
	}

	if c.Planner.Rollouts < 1 {
		return fmt.Errorf("planner.rollouts must be at least 1")
	}
	if c.Planner.MaxPlayoutSteps < 1 {
		return fmt.Errorf("planner.max_playout_steps must be at least 1")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}
