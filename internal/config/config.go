package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines bot configuration.
type Config struct {
	Bot BotConfig `yaml:"bot"`
	DB  DBConfig  `yaml:"db"`
	Log LogConfig `yaml:"log"`
}

type BotConfig struct {
	Token string `yaml:"token"`
	// Users is the allow-list of Telegram user ids permitted to talk to
	// the bot. An empty list means nobody gets through.
	Users       []int64 `yaml:"users"`
	PollTimeout int     `yaml:"poll_timeout"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables win over the file.
func Load(path string) (Config, error) {
	cfg := Config{
		Bot: BotConfig{
			PollTimeout: 30,
		},
		DB: DBConfig{
			Path: "notekeeper.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if token := os.Getenv("NOTEKEEPER_BOT_TOKEN"); token != "" {
		cfg.Bot.Token = token
	}
	if users := os.Getenv("NOTEKEEPER_BOT_USERS"); users != "" {
		parsed, err := parseUsers(users)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEKEEPER_BOT_USERS: %w", err)
		}
		cfg.Bot.Users = parsed
	}
	if timeoutStr := os.Getenv("NOTEKEEPER_POLL_TIMEOUT"); timeoutStr != "" {
		timeout, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEKEEPER_POLL_TIMEOUT: %w", err)
		}
		cfg.Bot.PollTimeout = timeout
	}
	if dbPath := os.Getenv("NOTEKEEPER_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("NOTEKEEPER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Bot.Token == "" {
		return Config{}, errors.New("bot token is required")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func parseUsers(raw string) ([]int64, error) {
	var users []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, nil
}
