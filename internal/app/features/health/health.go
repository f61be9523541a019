// internal/app/features/health/health.go
package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/jsonutil"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger checks that the lesson backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler provides health check endpoints.
type Handler struct {
	mongoClient *mongo.Client // nil when the service runs without MongoDB
	backend     Pinger
	logger      *zap.Logger
}

// NewHandler creates a new health check Handler. Either dependency may be nil.
func NewHandler(mongoClient *mongo.Client, backend Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		mongoClient: mongoClient,
		backend:     backend,
		logger:      logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds /ready, /readyz and /livez on the root router.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// probe pings every configured dependency.
func (h *Handler) probe(ctx context.Context) map[string]error {
	out := make(map[string]error, 2)

	if h.mongoClient != nil {
		pctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		out["mongodb"] = h.mongoClient.Ping(pctx, readpref.Primary())
		cancel()
	}
	if h.backend != nil {
		pctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		out["lesson_backend"] = h.backend.Ping(pctx)
		cancel()
	}
	return out
}

// Check reports the state of each dependency.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	for name, err := range h.probe(r.Context()) {
		if err != nil {
			resp.Status = "degraded"
			resp.Services[name] = "unavailable"
			h.logger.Warn("health check: dependency unavailable",
				zap.String("service", name),
				zap.Error(err))
			continue
		}
		resp.Services[name] = "ok"
	}

	if resp.Status != "ok" {
		jsonutil.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	jsonutil.OK(w, resp)
}

// Ready reports whether every dependency answers.
// Used by Kubernetes readiness probes.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	for name, err := range h.probe(r.Context()) {
		if err != nil {
			h.logger.Warn("readiness check failed", zap.String("service", name), zap.Error(err))
			jsonutil.JSON(w, http.StatusServiceUnavailable, Response{Status: "not ready"})
			return
		}
	}
	jsonutil.OK(w, Response{Status: "ready"})
}

// Live checks if the service is alive.
// Used by Kubernetes liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, Response{Status: "alive"})
}
