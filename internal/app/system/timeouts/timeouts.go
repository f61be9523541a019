// Package timeouts holds the deadlines applied to outbound calls.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values, used until Configure is called.
const (
	DefaultPing    = 2 * time.Second
	DefaultRead    = 5 * time.Second
	DefaultBackend = 10 * time.Second
	DefaultSave    = 15 * time.Second
)

var mu sync.RWMutex

var (
	ping    = DefaultPing
	read    = DefaultRead
	backend = DefaultBackend
	save    = DefaultSave
)

// Ping is the deadline for health probes.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Read is the deadline for a single store read.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return read
}

// Backend is the deadline for one backend REST call.
func Backend() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// Save is the deadline for a lesson create or update.
func Save() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return save
}

// Config holds timeout values. Zero fields keep the current value.
type Config struct {
	Ping    time.Duration
	Read    time.Duration
	Backend time.Duration
	Save    time.Duration
}

// Configure sets custom timeout values.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Read > 0 {
		read = cfg.Read
	}
	if cfg.Backend > 0 {
		backend = cfg.Backend
	}
	if cfg.Save > 0 {
		save = cfg.Save
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	read = DefaultRead
	backend = DefaultBackend
	save = DefaultSave
}

// Current returns the current configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Read: read, Backend: backend, Save: save}
}

// WithTimeout derives a context with timeout and logs when the deadline hit.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout))
		}
		cancel()
	}
}
