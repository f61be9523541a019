// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/uyghurconnect/uyghurlearn/internal/app/resources"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/tasks"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs once after the backend is connected and the schema is ready,
// but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Backend: appCfg.BackendTimeout,
		Save:    appCfg.BackendTimeout,
	})
	locale.SetDefault(appCfg.DefaultLanguage)

	draftRegistry = drafts.NewRegistry(appCfg.DraftTTL)

	// A backend that is down at startup is logged, not fatal: pages show
	// load errors until it comes back.
	pctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := deps.Lessons.Ping(pctx); err != nil {
		logger.Warn("lesson backend not reachable at startup", zap.Error(err))
	}

	startTaskRunner(appCfg, deps, logger)

	logger.Info("startup complete",
		zap.String("lesson_backend", appCfg.LessonBackend),
		zap.String("default_language", locale.Default()),
		zap.Duration("draft_ttl", draftRegistry.TTL()))
	return nil
}

// draftRegistry holds the open lesson drafts, shared by the sweep job and the editor.
var draftRegistry *drafts.Registry

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(appCfg AppConfig, deps DBDeps, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.DraftSweepJob(draftRegistry, appCfg.DraftSweepInterval, logger))
	taskRunner.Register(tasks.BackendProbeJob(deps.Lessons, appCfg.BackendProbeInterval, timeouts.Ping(), logger))

	taskRunner.Start()
}
