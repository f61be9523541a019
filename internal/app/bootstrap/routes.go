// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	coursesfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/courses"
	errorsfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/errors"
	healthfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/health"
	lessoneditorfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/lessoneditor"
	loginfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/login"
	logoutfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/logout"
	appresources "github.com/uyghurconnect/uyghurlearn/internal/app/resources"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and Startup have
// completed. Browser forms and the editor's fetch calls share one session
// cookie, so every state-changing route, including /api/drafts, goes
// through CSRF protection. The script sends the token in X-CSRF-Token.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	reg := draftRegistry
	if reg == nil {
		reg = drafts.NewRegistry(appCfg.DraftTTL)
	}

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("uyghurlearn_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	trustedOrigins := []string{
		"localhost:8080",
		"localhost:3000",
		"127.0.0.1:8080",
		"127.0.0.1:3000",
	}
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins(trustedOrigins))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Lessons, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/courses", http.StatusSeeOther)
	})

	// Authentication against the lesson backend
	loginHandler := loginfeature.NewHandler(deps.API, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, reg, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Course list and course pages
	coursesHandler := coursesfeature.NewHandler(deps.Lessons, sessionMgr, errLog, logger)
	coursesfeature.MountRoutes(r, coursesHandler, sessionMgr)

	// Lesson editor (admin and teacher): HTML forms and the JSON API used by editor.js
	editorHandler := lessoneditorfeature.NewHandler(
		lessonsave.New(deps.Lessons, logger),
		reg,
		sessionMgr,
		errLog,
		logger,
	)
	r.Mount("/lessons", lessoneditorfeature.Routes(editorHandler, sessionMgr))
	r.Mount("/api/drafts", lessoneditorfeature.APIRoutes(editorHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	logger.Info("HTTP handler built",
		zap.String("lesson_backend", appCfg.LessonBackend),
		zap.Bool("secure_cookies", secure))

	return r, nil
}
