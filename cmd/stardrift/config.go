package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config tunes the frontend, not the rules. Values come from .env or
// the environment; everything has a sane default.
type Config struct {
	SavePath       string `mapstructure:"SAVE_PATH"`
	EventsPath     string `mapstructure:"EVENTS_PATH"` // empty = embedded catalog
	TickMillis     int    `mapstructure:"TICK_MILLIS"`
	EventSeconds   int    `mapstructure:"EVENT_SECONDS"`
	AutosaveSecs   int    `mapstructure:"AUTOSAVE_SECONDS"`
	StatusSecs     int    `mapstructure:"STATUS_SECONDS"`
	Seed           uint64 `mapstructure:"SEED"` // 0 = time-based
	SyncURL        string `mapstructure:"SYNC_URL"` // empty = no leaderboard
	SyncSecs       int    `mapstructure:"SYNC_SECONDS"`
	PlayerID       string `mapstructure:"PLAYER_ID"`
	PlayerName     string `mapstructure:"PLAYER_NAME"`
}

func LoadConfig() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SAVE_PATH", "data/game_state.json")
	viper.SetDefault("EVENTS_PATH", "")
	viper.SetDefault("TICK_MILLIS", 200)
	viper.SetDefault("EVENT_SECONDS", 15)
	viper.SetDefault("AUTOSAVE_SECONDS", 10)
	viper.SetDefault("STATUS_SECONDS", 5)
	viper.SetDefault("SEED", 0)
	viper.SetDefault("SYNC_URL", "")
	viper.SetDefault("SYNC_SECONDS", 60)
	viper.SetDefault("PLAYER_ID", "pilot-1")
	viper.SetDefault("PLAYER_NAME", "Pilot")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env just means defaults + environment.
		if !errors.Is(err, fs.ErrNotExist) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, err
			}
		}
	}

	c := Config{}
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
