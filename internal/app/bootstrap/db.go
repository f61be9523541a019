// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/indexes"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/validators"
	"go.uber.org/zap"
)

// ConnectDB connects to the lesson backend.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema and
// Startup. The REST client is always built because login goes through the
// backend. MongoDB is only connected when lesson_backend is "mongo".
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := backendapi.New(backendapi.Options{
		BaseURL: appCfg.BackendURL,
		Timeout: appCfg.BackendTimeout,
		Logger:  logger,
	})
	if err != nil {
		return DBDeps{}, fmt.Errorf("failed to create backend client: %w", err)
	}
	logger.Info("lesson backend client ready",
		zap.String("backend_url", api.BaseURL()),
		zap.String("lesson_backend", appCfg.LessonBackend))

	if appCfg.LessonBackend != BackendMongo {
		return DBDeps{API: api, Lessons: api}, nil
	}

	// Configure MongoDB connection pool
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		API:           api,
		Lessons:       newDirectStore(client, db),
	}, nil
}

// EnsureSchema sets up collections, validators and indexes for the direct
// MongoDB store. It does nothing in api mode.
//
// The context has a timeout based on coreCfg.IndexBootTimeout.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase
	if db == nil {
		return nil
	}

	// Collections and validators first so indexes land on existing collections.
	logger.Info("ensuring collections and validators")
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure validators", zap.Error(err))
		return err
	}

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	logger.Info("database schema ensured successfully")
	return nil
}
