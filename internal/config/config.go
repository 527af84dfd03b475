package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server configuration. Values come from environment variables
// first, with an optional rag-server-config.json file as a fallback.
type Config struct {
	Port           string
	APIKey         string
	Model          string
	AllowedOrigins []string
	StaticDir      string
	MaxRetries     int
	BaseDelay      time.Duration
	Debug          bool
}

const defaultAllowedOrigins = "http://localhost:8081,http://localhost:19000," +
	"http://localhost:19006,http://localhost:8000"

// Load reads configuration. A missing config file is not an error; env
// variables alone are enough to run the server.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("rag-server-config")
	v.SetConfigType("json")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	v.SetDefault("port", "8000")
	v.SetDefault("model", "")
	v.SetDefault("allowed_origins", defaultAllowedOrigins)
	v.SetDefault("static_dir", "static")
	v.SetDefault("max_retries", 4)
	v.SetDefault("base_delay_seconds", 2)
	v.SetDefault("debug", false)

	// Env names kept compatible with the deployment scripts.
	bindings := map[string]string{
		"port":               "PORT",
		"api_key":            "GEMINI_API_KEY",
		"model":              "GEMINI_MODEL",
		"allowed_origins":    "ALLOWED_ORIGINS",
		"static_dir":         "STATIC_DIR",
		"max_retries":        "RAG_MAX_RETRIES",
		"base_delay_seconds": "RAG_BASE_DELAY_SECONDS",
		"debug":              "RAG_DEBUG",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		Port:           v.GetString("port"),
		APIKey:         v.GetString("api_key"),
		Model:          v.GetString("model"),
		AllowedOrigins: splitOrigins(v.GetString("allowed_origins")),
		StaticDir:      v.GetString("static_dir"),
		MaxRetries:     v.GetInt("max_retries"),
		BaseDelay:      time.Duration(v.GetInt("base_delay_seconds")) * time.Second,
		Debug:          v.GetBool("debug"),
	}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
