// internal/app/features/logout/logout.go
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"go.uber.org/zap"
)

// Handler provides logout handlers.
type Handler struct {
	sessionMgr *auth.SessionManager
	drafts     *drafts.Registry
	logger     *zap.Logger
}

// NewHandler creates a new logout Handler. reg may be nil.
func NewHandler(sessionMgr *auth.SessionManager, reg *drafts.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		sessionMgr: sessionMgr,
		drafts:     reg,
		logger:     logger,
	}
}

// Routes returns a chi.Router with logout routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.handleLogout)
	r.Get("/", h.handleLogout) // Allow GET for simple logout links
	return r
}

// handleLogout ends the session and drops the user's open drafts.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.CurrentUser(r); ok {
		if h.drafts != nil {
			if n := h.drafts.DiscardOwner(user.ID); n > 0 {
				h.logger.Debug("discarded drafts on logout",
					zap.String("user_id", user.ID),
					zap.Int("count", n))
			}
		}
		h.logger.Info("user signed out", zap.String("user_id", user.ID))
	}

	h.sessionMgr.DestroySession(w, r)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
