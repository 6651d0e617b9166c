package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	LogLevel       log.Level
	WSBufferSize   int
}

var levels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// Load reads the CHESS_* environment variables.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv, falling back to defaults for
// unset keys.
func LoadFrom(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{Addr: get("CHESS_ADDR", ":3000")}

	for _, origin := range strings.Split(get("CHESS_ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	level, ok := levels[strings.ToLower(get("CHESS_LOG_LEVEL", "info"))]
	if !ok {
		return Config{}, fmt.Errorf("invalid CHESS_LOG_LEVEL %q", getenv("CHESS_LOG_LEVEL"))
	}
	cfg.LogLevel = level

	size, err := strconv.Atoi(get("CHESS_WS_BUFFER_SIZE", "1024"))
	if err != nil || size <= 0 {
		return Config{}, fmt.Errorf("invalid CHESS_WS_BUFFER_SIZE %q", getenv("CHESS_WS_BUFFER_SIZE"))
	}
	cfg.WSBufferSize = size

	return cfg, nil
}
