// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires this app into the WAFFLE lifecycle.
// Each function is called in order by app.Run, from configuration
// loading through backend setup, one-time startup work, HTTP handler
// construction, and finally graceful shutdown.
var Hooks = app.Hooks[AppConfig, DBDeps]{
	Name:           "uyghurlearn",  // used only for logging/diagnostics
	LoadConfig:     LoadConfig,     // load core + app config
	ValidateConfig: ValidateConfig, // validate backend URL and lesson backend mode
	ConnectDB:      ConnectDB,      // build the backend client, connect MongoDB in mongo mode
	EnsureSchema:   EnsureSchema,   // create validators and indexes in mongo mode
	Startup:        Startup,        // timeouts, locale, drafts, background jobs
	BuildHandler:   BuildHandler,   // build the HTTP router + middleware stack
	Shutdown:       Shutdown,       // stop jobs and disconnect MongoDB
}
