package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"anchorpoint-proxy/internal/search"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Search proxy specifics
	Upstream  UpstreamConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Search    SearchConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// UpstreamConfig points at the AI search service queries are forwarded to.
type UpstreamConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

type CORSConfig struct {
	Origins []string
	Strict  bool
}

type RateLimitConfig struct {
	PerMin int // 0 disables; opt-in
}

// SearchConfig overrides the built-in defaults merged into every upstream request.
type SearchConfig struct {
	FocusMode              string
	OptimizationMode       string
	SystemInstructions     string
	ChatModelProvider      string
	ChatModelName          string
	EmbeddingModelProvider string
	EmbeddingModelName     string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// load builds a Config from v.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxBodyBytes = v.GetInt64("http_server.max_body_bytes")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Upstream
	cfg.Upstream.APIURL = strings.TrimRight(strings.TrimSpace(v.GetString("upstream.api_url")), "/")
	cfg.Upstream.APIKey = strings.TrimSpace(v.GetString("upstream.api_key"))
	cfg.Upstream.Timeout = v.GetDuration("upstream.timeout")

	// CORS
	cfg.CORS.Origins = splitList(v.GetString("cors.origins"))
	cfg.CORS.Strict = v.GetBool("cors.strict")

	// Rate limit
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Search defaults
	cfg.Search.FocusMode = v.GetString("search.defaults.focus_mode")
	cfg.Search.OptimizationMode = v.GetString("search.defaults.optimization_mode")
	cfg.Search.SystemInstructions = v.GetString("search.defaults.system_instructions")
	cfg.Search.ChatModelProvider = v.GetString("search.defaults.chat_model_provider")
	cfg.Search.ChatModelName = v.GetString("search.defaults.chat_model_name")
	cfg.Search.EmbeddingModelProvider = v.GetString("search.defaults.embedding_model_provider")
	cfg.Search.EmbeddingModelName = v.GetString("search.defaults.embedding_model_name")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.max_body_bytes", 1<<20)
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("cors.strict", false)
	v.SetDefault("rate_limit.per_min", 0)
}

// validate rejects configurations the proxy cannot start with.
func validate(cfg *Config) error {
	if cfg.Upstream.APIURL == "" {
		return fmt.Errorf("UPSTREAM_API_URL environment variable is required")
	}
	u, err := url.Parse(cfg.Upstream.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("UPSTREAM_API_URL must be an absolute http(s) URL, got %q", cfg.Upstream.APIURL)
	}
	if cfg.Upstream.APIKey == "" {
		return fmt.Errorf("UPSTREAM_API_KEY environment variable is required")
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive, got %s", cfg.Upstream.Timeout)
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative")
	}
	return nil
}

// splitList splits a comma-separated value, trimming entries and dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Apply overlays the configured search defaults onto base. Empty values keep base.
func (c SearchConfig) Apply(base search.Defaults) search.Defaults {
	base.FocusMode = orDefault(c.FocusMode, base.FocusMode)
	base.OptimizationMode = orDefault(c.OptimizationMode, base.OptimizationMode)
	base.SystemInstructions = orDefault(c.SystemInstructions, base.SystemInstructions)
	base.ChatModel.Provider = orDefault(c.ChatModelProvider, base.ChatModel.Provider)
	base.ChatModel.Name = orDefault(c.ChatModelName, base.ChatModel.Name)
	base.EmbeddingModel.Provider = orDefault(c.EmbeddingModelProvider, base.EmbeddingModel.Provider)
	base.EmbeddingModel.Name = orDefault(c.EmbeddingModelName, base.EmbeddingModel.Name)
	return base
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
