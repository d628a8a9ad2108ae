package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application-level configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	APIBaseURL     string `yaml:"api_url"`         // Prefix for every API call
	ImageContext   string `yaml:"image_context"`   // Absolute URL or relative path prefix for post images
	Board          string `yaml:"board"`           // Board name used in permalinks, without slashes
	ReplyLimit     int    `yaml:"reply_limit"`     // Replies shown in thread view, 0 for all
	ObjectionAsset string `yaml:"objection_asset"` // Image shown for the objection directive
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"` // Empty disables logging

	// Front-door server.
	Port      int    `yaml:"port"`
	APIOrigin string `yaml:"api_origin"`
	StaticDir string `yaml:"static_dir"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		APIBaseURL:     "http://localhost:3000/api",
		ImageContext:   "http://localhost:3000/images",
		Board:          "test",
		ObjectionAsset: "objection.gif",
		LogLevel:       "info",
		Port:           3000,
		APIOrigin:      "localhost:8080",
		StaticDir:      "public",
	}
}

// Load reads configuration from, in increasing precedence: defaults, the YAML
// file named by ALICE_CONFIG, a .env file in the working directory, and the
// process environment.
//
//	ALICE_API_URL         : API base URL (absolute http/https)
//	ALICE_IMAGE_CONTEXT   : image URL or path prefix
//	ALICE_BOARD           : board name (default: "test")
//	ALICE_REPLY_LIMIT     : replies shown in thread view (default: 0, all)
//	ALICE_OBJECTION_ASSET : objection image (default: "objection.gif")
//	ALICE_LOG_LEVEL       : debug, info, warn, error
//	ALICE_LOG_FILE        : log destination (default: none)
//	PORT                  : front-door port (default: 3000)
//	APIURL                : front-door API origin (default: "localhost:8080")
//	ALICE_STATIC_DIR      : front-door static directory (default: "public")
func Load() (Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("ALICE_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return normalize(cfg)
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
		return nil
	}

	setString("ALICE_API_URL", &cfg.APIBaseURL)
	setString("ALICE_IMAGE_CONTEXT", &cfg.ImageContext)
	setString("ALICE_BOARD", &cfg.Board)
	setString("ALICE_OBJECTION_ASSET", &cfg.ObjectionAsset)
	setString("ALICE_LOG_LEVEL", &cfg.LogLevel)
	setString("ALICE_LOG_FILE", &cfg.LogFile)
	setString("APIURL", &cfg.APIOrigin)
	setString("ALICE_STATIC_DIR", &cfg.StaticDir)
	if err := setInt("ALICE_REPLY_LIMIT", &cfg.ReplyLimit); err != nil {
		return err
	}
	return setInt("PORT", &cfg.Port)
}

func normalize(cfg Config) (Config, error) {
	parsed, err := url.Parse(cfg.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid ALICE_API_URL: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid ALICE_API_URL: only http and https are allowed")
	}
	cfg.APIBaseURL = strings.TrimRight(parsed.String(), "/")

	cfg.Board = strings.Trim(cfg.Board, "/")
	if cfg.Board == "" {
		return Config{}, fmt.Errorf("invalid ALICE_BOARD: must not be empty")
	}
	if cfg.ReplyLimit < 0 {
		return Config{}, fmt.Errorf("invalid ALICE_REPLY_LIMIT: must not be negative")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, nil
}
