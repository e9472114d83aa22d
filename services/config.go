package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yeongbeomSong/CourseEnroll/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centralizes everything needed to reach the registration registry and
// run the caches.
type Config struct {
	AppName             string
	HTTPPort            int
	RunMode             string
	RegistryBaseURL     string
	ServiceBearerToken  string
	RequestTimeout      time.Duration
	RetryCount          int
	CatalogPollInterval time.Duration
	SessionIdleTTL      time.Duration
	AllowedOrigins      []string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig returns the configuration loaded from environment variables or app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:             getString("APP_NAME", "appname", "course_enroll_mid"),
			HTTPPort:            getInt("HTTP_PORT", "httpport", 8080),
			RunMode:             getString("RUN_MODE", "runmode", "dev"),
			RegistryBaseURL:     normalizeBase(getString("REGISTRY_BASE_URL", "registry_base_url", "")),
			ServiceBearerToken:  getString("REGISTRY_SERVICE_TOKEN", "registry_service_token", ""),
			RequestTimeout:      time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			RetryCount:          getInt("RETRY_COUNT", "retry_count", 2),
			CatalogPollInterval: time.Duration(getInt("CATALOG_POLL_MS", "catalog_poll_ms", 10000)) * time.Millisecond,
			SessionIdleTTL:      time.Duration(getInt("SESSION_IDLE_TTL_MS", "session_idle_ttl_ms", 300000)) * time.Millisecond,
			AllowedOrigins:      splitCSV(getString("ALLOWED_ORIGINS", "allowed_origins", "http://localhost:5173")),
		}

		if cfg.RegistryBaseURL == "" {
			panic("REGISTRY_BASE_URL not configured")
		}

		helpers.SetDefaultRetryCount(cfg.RetryCount)
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSpace(value)
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// BuildURL joins a base URL with path elements avoiding double slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
