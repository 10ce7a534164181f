package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Config holds all configurable game parameters.
type Config struct {
	// ParadeSize is the number of cards dealt into the parade at setup.
	ParadeSize int `json:"parade_size"`
	// HandSize is the number of cards dealt to each player at setup.
	HandSize int `json:"hand_size"`
	// CardsPerColour is the number of values per colour; the deck holds
	// 6 * CardsPerColour cards.
	CardsPerColour int `json:"cards_per_colour"`
	// UseColours enables ANSI colour codes in card output.
	UseColours bool `json:"use_colours"`
	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `json:"log_level"`
}

// Defaults returns a Config with the documented default values.
func Defaults() *Config {
	return &Config{
		ParadeSize:     6,
		HandSize:       5,
		CardsPerColour: 11,
		UseColours:     true,
		LogLevel:       "info",
	}
}

// Load reads configuration from an optional config.json file, then applies
// environment variable overrides. Fields not set in either source retain
// their default values; invalid values log a warning and keep the default.
// Construction never fails.
func Load() *Config {
	cfg := Defaults()

	if f, err := os.Open("config.json"); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			log.Printf("Warning: failed to parse config.json: %v", err)
		}
	}

	overrideInt(&cfg.ParadeSize, "PARADE_SIZE")
	overrideInt(&cfg.HandSize, "HAND_SIZE")
	overrideInt(&cfg.CardsPerColour, "CARDS_PER_COLOUR")
	overrideBool(&cfg.UseColours, "USE_ANSI_COLOURS")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	return cfg
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
