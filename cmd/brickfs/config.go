package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/brickctl/internal/transport"
)

// brickfs reads the same TOML file as brickctl but only needs the link
// settings; unrelated keys are ignored.
type fileConfig struct {
	Port        string `toml:"port"`
	Baud        int    `toml:"baud"`
	ReadTimeout string `toml:"read_timeout"`
}

func loadConfig(path string) (transport.Config, error) {
	cfg := transport.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return transport.Config{}, fmt.Errorf("load brickfs config: %w", err)
	}

	if meta.IsDefined("port") {
		port := strings.TrimSpace(raw.Port)
		if port != "" {
			cfg.Port = port
		}
	}

	if meta.IsDefined("baud") {
		if raw.Baud <= 0 {
			return transport.Config{}, fmt.Errorf("baud must be positive, got %d", raw.Baud)
		}
		cfg.Baud = raw.Baud
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return transport.Config{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}

	return cfg, nil
}
