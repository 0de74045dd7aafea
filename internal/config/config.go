package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	infraconfig "quotes-service/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	CORSOrigins     []string
	FreshnessWindow time.Duration
	// Storage
	DatabaseURL      string
	Migrate          bool
	PGMaxConns       int
	PGIdleTimeout    time.Duration
	PGAcquireTimeout time.Duration
	// Provider
	Provider        string
	CMCAPIBase      string
	CMCAPIKey       string
	UpstreamTimeout time.Duration
	// Quote cache in front of PG: none, memory or redis
	QuoteCache    string
	MemCacheSize  int
	SingleFlight  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// gRPC health, "off" disables
	GRPCAddr   string
	HealthPoll time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func boolDef(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func msDef(key string, def time.Duration) time.Duration {
	return time.Duration(atoiDef(getEnv(key, ""), int(def/time.Millisecond))) * time.Millisecond
}

func durationDef(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func listDef(s string, def []string) []string {
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	env := getEnv("ENV", "development")
	origins := []string{"http://localhost:3000"}
	if env == "production" {
		origins = nil
	}
	return Config{
		Env:              env,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnv("PORT", infraconfig.DefaultHTTPPort),
		CORSOrigins:      listDef(getEnv("CORS_ORIGINS", ""), origins),
		FreshnessWindow:  durationDef(getEnv("FRESHNESS_WINDOW", ""), infraconfig.DefaultFreshnessWindow),
		DatabaseURL:      getEnv("DATABASE_URL", infraconfig.DefaultDatabaseURL),
		Migrate:          boolDef(getEnv("MIGRATE", "true"), true),
		PGMaxConns:       atoiDef(getEnv("PG_MAX_CONNS", ""), infraconfig.DefaultPGMaxConns),
		PGIdleTimeout:    msDef("PG_IDLE_TIMEOUT_MS", infraconfig.DefaultPGIdleTimeout),
		PGAcquireTimeout: msDef("PG_ACQUIRE_TIMEOUT_MS", infraconfig.DefaultPGAcquireTimeout),
		Provider:         getEnv("PROVIDER", "cmc"),
		CMCAPIBase:       getEnv("CMC_API_BASE", infraconfig.DefaultCMCBaseURL),
		CMCAPIKey:        getEnv("CMC_API_KEY", ""),
		UpstreamTimeout:  msDef("UPSTREAM_TIMEOUT_MS", infraconfig.DefaultUpstreamTimeout),
		QuoteCache:       getEnv("QUOTE_CACHE", "none"),
		MemCacheSize:     atoiDef(getEnv("MEMCACHE_SIZE", ""), 1024),
		SingleFlight:     boolDef(getEnv("QUOTE_SINGLEFLIGHT", ""), false),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          atoiDef(getEnv("REDIS_DB", "0"), 0),
		GRPCAddr:         getEnv("GRPC_ADDR", ":9090"),
		HealthPoll:       msDef("HEALTH_POLL_MS", infraconfig.DefaultHealthPoll),
	}
}

func (c Config) IsDevelopment() bool { return c.Env == "development" }
