// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown.
type DBDeps struct {
	// MongoDB client and database; nil unless lesson_backend is "mongo"
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// API is the backend REST client. Login always goes through it.
	API *backendapi.Client

	// Lessons is where lessons and courses are read and written:
	// API itself, or the direct MongoDB store.
	Lessons LessonBackend
}
