package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// fileConfig is the pulsectl.toml key mapping.
type fileConfig struct {
	Server      string `toml:"server"`
	Cookie      string `toml:"cookie"`
	AppName     string `toml:"app_name"`
	LogLevel    string `toml:"log_level"`
	HistoryFile string `toml:"history_file"`
}

type config struct {
	Server      string
	Cookie      string
	AppName     string
	Level       zerolog.Level
	HistoryFile string
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pulsectl", "pulsectl.toml")
	}
	return ""
}

// loadConfig reads the TOML config, overlaying defaults. A missing file at
// the default location is not an error.
func loadConfig(path string, required bool) (config, error) {
	cfg := config{
		AppName:     "pulsectl",
		Level:       zerolog.WarnLevel,
		HistoryFile: filepath.Join(os.TempDir(), "pulsectl.history"),
	}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("server") {
		cfg.Server = strings.TrimSpace(raw.Server)
	}
	if meta.IsDefined("cookie") {
		cfg.Cookie = strings.TrimSpace(raw.Cookie)
	}
	if meta.IsDefined("app_name") {
		cfg.AppName = strings.TrimSpace(raw.AppName)
	}
	if meta.IsDefined("history_file") {
		cfg.HistoryFile = strings.TrimSpace(raw.HistoryFile)
	}
	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, fmt.Errorf("load config: log_level: %w", err)
		}
		cfg.Level = level
	}
	return cfg, nil
}
