package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds file-backed defaults for the CLI, loaded from
// ~/.config/mazegen/config.toml. Every value can be overridden by the
// corresponding flag; absent values fall back to the built-in defaults.
//
// Example config:
//
//	[generate]
//	width = 40
//	height = 30
//	weave = 0.15
//
//	[render]
//	format = "png"
//	cell-width = 24
//
//	[server]
//	addr = ":8080"
//	redis-addr = "localhost:6379"
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Render   RenderConfig   `toml:"render"`
	Server   ServerConfig   `toml:"server"`
}

// GenerateConfig holds default generation parameters.
type GenerateConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Weave  float64 `toml:"weave"`
}

// RenderConfig holds default rendering parameters.
type RenderConfig struct {
	Format       string `toml:"format"`
	Space        string `toml:"space"`
	CellWidth    int    `toml:"cell-width"`
	WallWidth    int    `toml:"wall-width"`
	PassageWidth int    `toml:"passage-width"`
	Palette      string `toml:"palette"`
}

// ServerConfig holds default server parameters.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	RedisAddr     string `toml:"redis-addr"`
	RedisPassword string `toml:"redis-password"`
	RedisDB       int    `toml:"redis-db"`
	MongoURI      string `toml:"mongo-uri"`
	MongoDB       string `toml:"mongo-db"`
	Namespace     string `toml:"namespace"`
	CacheTTLMin   int    `toml:"cache-ttl-minutes"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		Generate: GenerateConfig{
			Width:  20,
			Height: 20,
			Weave:  0.1,
		},
		Render: RenderConfig{
			Format: "text",
			Space:  "plain",
		},
		Server: ServerConfig{
			Addr:        ":8080",
			MongoDB:     appName,
			Namespace:   appName + ":",
			CacheTTLMin: 60,
		},
	}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
