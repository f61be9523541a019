// internal/app/features/login/login.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/errors"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/inputval"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/network"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Authenticator exchanges credentials for a backend bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (backendapi.LoginResult, error)
}

// Handler provides login handlers.
type Handler struct {
	backend    Authenticator
	sessionMgr *auth.SessionManager
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new login Handler.
func NewHandler(backend Authenticator, sessionMgr *auth.SessionManager, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		backend:    backend,
		sessionMgr: sessionMgr,
		errLog:     errLog,
		logger:     logger,
	}
}

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error     string
	Username  string
	ReturnURL string
}

type loginInput struct {
	Username string `validate:"required,max=100" label:"Username"`
	Password string `validate:"required,max=200" label:"Password"`
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)
	return r
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, username, returnURL, errMsg string) {
	vm := LoginVM{
		BaseVM:    viewdata.New(r),
		Username:  username,
		ReturnURL: returnURL,
		Error:     errMsg,
	}
	vm.Title = vm.T("login.title")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "login/index", vm)
}

// showLogin displays the login form. Signed-in users go straight on.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	returnURL := query.Get(r, "return")
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/courses"), http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "", returnURL, "")
}

// handleLogin signs the user in against the lesson backend.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := loginInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	returnURL := r.FormValue("return")
	vm := viewdata.New(r)

	if res := inputval.Validate(in); res.HasErrors() {
		h.render(w, r, http.StatusUnprocessableEntity, in.Username, returnURL, vm.T("login.required"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Backend(), h.logger, "backend login")
	defer cancel()

	res, err := h.backend.Login(ctx, in.Username, in.Password)
	if err != nil {
		h.render(w, r, loginStatus(err), in.Username, returnURL, h.loginError(r, vm, err))
		return
	}

	u, err := h.sessionMgr.CreateSession(w, r, res.Token)
	if err != nil {
		h.errLog.Log(r, "backend issued an unusable token", err)
		h.render(w, r, http.StatusBadGateway, in.Username, returnURL, vm.T("login.failed"))
		return
	}

	h.logger.Info("user signed in",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role),
		zap.String("client_ip", network.ClientIP(r)))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/courses"), http.StatusSeeOther)
}

// loginError picks the message shown for a failed backend login. A
// rejected login shows the backend's own message when it sent one.
func (h *Handler) loginError(r *http.Request, vm viewdata.BaseVM, err error) string {
	var he *backendapi.HTTPError
	switch {
	case backendapi.IsUnauthorized(err):
		if errors.As(err, &he) && he.Message != "" {
			return he.Message
		}
		return vm.T("login.failed")
	case errors.As(err, &he) && he.StatusCode < 500:
		if he.Message != "" {
			return he.Message
		}
		return vm.T("login.failed")
	default:
		h.errLog.Log(r, "backend login failed", err)
		return vm.T("login.network")
	}
}

func loginStatus(err error) int {
	var he *backendapi.HTTPError
	switch {
	case backendapi.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.As(err, &he) && he.StatusCode < 500:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
