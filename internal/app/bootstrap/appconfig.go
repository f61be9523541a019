// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Lesson backend modes.
const (
	BackendAPI   = "api"   // lessons and courses through the backend REST API
	BackendMongo = "mongo" // lessons and courses straight from the backend's MongoDB
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// The struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// Lesson backend
	BackendURL     string        // Base URL of the UyghurLearn REST API (login always goes here)
	LessonBackend  string        // "api" or "mongo"
	BackendTimeout time.Duration // Per-request timeout for backend calls (default: 10s)

	// MongoDB connection configuration (only used when LessonBackend is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: uyghurlearn-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Maximum session cookie lifetime (default: 24h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// Lesson drafts
	DraftTTL           time.Duration // Idle lifetime of an editing session (default: 12h)
	DraftSweepInterval time.Duration // How often expired drafts are removed (default: 15m)

	// Background probe of the lesson backend
	BackendProbeInterval time.Duration // default: 1m

	// Language used when the request does not pick one ("en" or "ru")
	DefaultLanguage string
}
