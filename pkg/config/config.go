package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	// MaxAutocompleteLimit is the most choices Discord accepts in one
	// autocomplete response.
	MaxAutocompleteLimit     = 25
	DefaultAutocompleteLimit = MaxAutocompleteLimit
)

type Config struct {
	Discord struct {
		Token             string `toml:"token" env:"TYPECHART_DISCORD_TOKEN"`
		AutocompleteLimit int    `toml:"autocomplete_limit" env:"TYPECHART_AUTOCOMPLETE_LIMIT"`
		EmojiGuild        string `toml:"emoji_guild" env:"TYPECHART_EMOJI_GUILD"`
	} `toml:"discord"`
	Dataset struct {
		Path string `toml:"path" env:"TYPECHART_DATASET_PATH"`
	} `toml:"dataset"`
	DB struct {
		Path string `toml:"path" env:"TYPECHART_DATABASE_PATH"`
	} `toml:"database"`
	HTTP struct {
		Addr string `toml:"addr" env:"TYPECHART_HTTP_ADDR"`
	} `toml:"http"`
}

var (
	ErrNoSurface     = errors.New("neither a discord token nor an http address is configured")
	ErrTwoDatasets   = errors.New("dataset path and database path are mutually exclusive")
	ErrNegativeLimit = errors.New("autocomplete limit must not be negative")
	ErrLimitTooHigh  = errors.New("autocomplete limit exceeds what discord accepts")
)

// Read decodes the TOML file at path, if any, and then applies environment
// overrides. An empty path skips the file.
func Read(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config file %q: %w", path, err)
		}
	}

	err := env.Parse(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if cfg.Discord.AutocompleteLimit == 0 {
		cfg.Discord.AutocompleteLimit = DefaultAutocompleteLimit
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch {
	case cfg.Discord.Token == "" && cfg.HTTP.Addr == "":
		return ErrNoSurface
	case cfg.Dataset.Path != "" && cfg.DB.Path != "":
		return ErrTwoDatasets
	case cfg.Discord.AutocompleteLimit < 0:
		return ErrNegativeLimit
	case cfg.Discord.AutocompleteLimit > MaxAutocompleteLimit:
		return fmt.Errorf("limit %d > %d: %w", cfg.Discord.AutocompleteLimit, MaxAutocompleteLimit, ErrLimitTooHigh)
	}

	return nil
}
