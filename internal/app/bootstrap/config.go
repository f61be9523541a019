// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/inputval"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "UYGHURLEARN"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_url, session_name, etc.
//   - Environment variables: UYGHURLEARN_BACKEND_URL, UYGHURLEARN_SESSION_NAME, etc.
//   - Command-line flags: --backend_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_url", Default: "http://localhost:5000", Desc: "UyghurLearn backend REST API base URL"},
	{Name: "lesson_backend", Default: BackendAPI, Desc: "Where lessons are stored: 'api' (REST) or 'mongo' (direct)"},
	{Name: "backend_timeout", Default: "10s", Desc: "Per-request timeout for backend calls"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (lesson_backend=mongo)"},
	{Name: "mongo_database", Default: "uyghurlearn", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "uyghurlearn-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	{Name: "draft_ttl", Default: "12h", Desc: "How long an idle lesson draft is kept"},
	{Name: "draft_sweep_interval", Default: "15m", Desc: "How often expired lesson drafts are removed"},
	{Name: "backend_probe_interval", Default: "1m", Desc: "How often the lesson backend is probed"},

	{Name: "default_language", Default: locale.English, Desc: "UI language when the browser does not ask for one (en, ru)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, UYGHURLEARN_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendURL:     appValues.String("backend_url"),
		LessonBackend:  strings.ToLower(strings.TrimSpace(appValues.String("lesson_backend"))),
		BackendTimeout: appValues.Duration("backend_timeout", 10*time.Second),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		DraftTTL:             appValues.Duration("draft_ttl", 12*time.Hour),
		DraftSweepInterval:   appValues.Duration("draft_sweep_interval", 15*time.Minute),
		BackendProbeInterval: appValues.Duration("backend_probe_interval", time.Minute),

		DefaultLanguage: strings.ToLower(strings.TrimSpace(appValues.String("default_language"))),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !inputval.IsValidHTTPURL(appCfg.BackendURL) {
		logger.Error("invalid backend URL", zap.String("backend_url", appCfg.BackendURL))
		return fmt.Errorf("invalid backend URL: %q", appCfg.BackendURL)
	}

	switch appCfg.LessonBackend {
	case BackendAPI:
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("lesson_backend must be %q or %q, got %q", BackendAPI, BackendMongo, appCfg.LessonBackend)
	}

	if appCfg.DefaultLanguage != "" && !locale.IsSupported(appCfg.DefaultLanguage) {
		return fmt.Errorf("unsupported default_language %q", appCfg.DefaultLanguage)
	}

	return nil
}
