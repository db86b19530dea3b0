// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	Cache     CacheConfig
	Providers ProvidersConfig
	Aggregate AggregateConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Name         string
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 30s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// CacheConfig holds the provider result cache configuration.
type CacheConfig struct {
	// BasePath is the directory for the Badger cache (default: ~/Palette/cache)
	BasePath string
}

// ProvidersConfig holds credentials for the external content providers.
// Any credential may be empty; the matching provider then contributes no
// results instead of failing startup.
type ProvidersConfig struct {
	SpotifyClientID     string
	SpotifyClientSecret string
	TMDBAPIKey          string
	TumblrAPIKey        string
	UnsplashAccessKey   string
}

// AggregateConfig holds aggregation tuning.
type AggregateConfig struct {
	// Pacing is the delay between sequential term queries to one provider
	// (default: 200ms)
	Pacing time.Duration
	// CallTimeout bounds each provider call (default: 10s)
	CallTimeout time.Duration
	// MaxTerms caps how many top search terms are queried per provider
	// (default: 3)
	MaxTerms int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	serverName := flag.String("server-name", "", "Name for the server")
	cachePath := flag.String("cache-path", "", "Base path for the provider result cache")

	// Server flags
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 30s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	// Aggregation flags
	pacing := flag.String("provider-pacing", "", "Delay between sequential provider term queries (default: 200ms)")
	callTimeout := flag.String("provider-timeout", "", "Per-provider-call timeout (default: 10s)")
	maxTerms := flag.String("provider-max-terms", "", "Max top search terms queried per provider (default: 3)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	// Parse flags but don't exit on error - we want to handle it gracefully.
	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Name: getConfigValue(*serverName, "SERVER_NAME", "Palette Server"),
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Cache: CacheConfig{
			BasePath: getConfigValue(*cachePath, "CACHE_PATH", ""),
		},
		Providers: ProvidersConfig{
			SpotifyClientID:     getConfigValue("", "SPOTIFY_CLIENT_ID", ""),
			SpotifyClientSecret: getConfigValue("", "SPOTIFY_CLIENT_SECRET", ""),
			TMDBAPIKey:          getConfigValue("", "TMDB_API_KEY", ""),
			TumblrAPIKey:        getConfigValue("", "TUMBLR_API_KEY", ""),
			UnsplashAccessKey:   getConfigValue("", "UNSPLASH_ACCESS_KEY", ""),
		},
		Aggregate: AggregateConfig{
			MaxTerms: getIntConfigValue(*maxTerms, "PROVIDER_MAX_TERMS", 3),
		},
	}

	// Parse server timeouts.
	readTimeoutStr := getConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	readTimeoutDuration, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeoutDuration

	writeTimeoutStr := getConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "30s")
	writeTimeoutDuration, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeoutDuration

	idleTimeoutStr := getConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	idleTimeoutDuration, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeoutDuration

	// Parse aggregation tuning.
	pacingStr := getConfigValue(*pacing, "PROVIDER_PACING", "200ms")
	pacingDuration, err := time.ParseDuration(pacingStr)
	if err != nil {
		return nil, fmt.Errorf("invalid provider pacing %q: %w", pacingStr, err)
	}
	cfg.Aggregate.Pacing = pacingDuration

	callTimeoutStr := getConfigValue(*callTimeout, "PROVIDER_TIMEOUT", "10s")
	callTimeoutDuration, err := time.ParseDuration(callTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid provider timeout %q: %w", callTimeoutStr, err)
	}
	cfg.Aggregate.CallTimeout = callTimeoutDuration

	// Expand and validate cache path.
	if err := cfg.expandCachePath(); err != nil {
		return nil, fmt.Errorf("invalid cache path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Cache.BasePath == "" {
		return errors.New("cache base path cannot be empty after expansion")
	}

	if c.Aggregate.MaxTerms <= 0 {
		return fmt.Errorf("invalid provider max terms: %d (must be positive)", c.Aggregate.MaxTerms)
	}

	// Provider credentials are optional: a missing credential disables that
	// provider rather than failing startup.

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandCachePath expands ~ and makes the path absolute.
func (c *Config) expandCachePath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Palette", "cache")

	expanded, err := expandPath(c.Cache.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Cache.BasePath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
