package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/brickctl/internal/transport"
)

type appConfig struct {
	Serial      transport.Config
	MetricsAddr string
}

type fileConfig struct {
	Port        string `toml:"port"`
	Baud        int    `toml:"baud"`
	ReadTimeout string `toml:"read_timeout"`
	MetricsAddr string `toml:"metrics_addr"`
}

func defaultAppConfig() appConfig {
	return appConfig{Serial: transport.DefaultConfig()}
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load brickctl config: %w", err)
	}

	if meta.IsDefined("port") {
		port := strings.TrimSpace(raw.Port)
		if port != "" {
			cfg.Serial.Port = port
		}
	}

	if meta.IsDefined("baud") {
		if raw.Baud <= 0 {
			return appConfig{}, fmt.Errorf("baud must be positive, got %d", raw.Baud)
		}
		cfg.Serial.Baud = raw.Baud
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return appConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.Serial.ReadTimeout = d
	}

	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}

	return cfg, nil
}
