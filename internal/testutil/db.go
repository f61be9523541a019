// Package testutil provides helpers shared by handler and store tests: a
// MongoDB test database, an in-memory lesson backend, request builders and
// template boot.
package testutil

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultTestMongoURI is used when UYGHURLEARN_TEST_MONGO_URI is unset.
	DefaultTestMongoURI = "mongodb://localhost:27017"
	// TestDBName prefixes every per-test database.
	TestDBName = "uyghurlearn_test"

	// MongoDB database names are limited to 63 bytes.
	maxDBName = 63
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

func testMongoURI() string {
	if uri := os.Getenv("UYGHURLEARN_TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return DefaultTestMongoURI
}

func getClient() (*mongo.Client, error) {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(testMongoURI()).
			SetMaxPoolSize(50).
			SetConnectTimeout(5 * time.Second).
			SetServerSelectionTimeout(5 * time.Second)

		client, clientErr = mongo.Connect(ctx, opts)
		if clientErr != nil {
			return
		}
		clientErr = client.Ping(ctx, nil)
	})
	return client, clientErr
}

// SetupTestDB returns an empty database named after the running test, with
// the production indexes in place. The test is skipped when MongoDB cannot
// be reached, and the database is dropped on cleanup.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	c, err := getClient()
	if err != nil {
		t.Skipf("test MongoDB not available: %v", err)
	}

	db := c.Database(testDBName(t.Name()))

	ctx, cancel := TestContext()
	defer cancel()

	if err := db.Drop(ctx); err != nil {
		t.Fatalf("drop test database: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test database on cleanup: %v", err)
		}
	})

	return db
}

// testDBName maps a test name such as "TestStore/Create" onto a valid,
// length-limited database name.
func testDBName(testName string) string {
	suffix := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, testName)

	name := TestDBName + "_" + suffix
	if len(name) > maxDBName {
		name = name[:maxDBName]
	}
	return name
}

// TestContext returns a context suitable for a single test's store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
