// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/network"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger wraps the zap logger for handler failures.
type ErrorLogger struct {
	logger *zap.Logger
}

// NewErrorLogger creates a new ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{logger: logger}
}

// Log logs err with request details and the signed-in user.
func (e *ErrorLogger) Log(r *http.Request, msg string, err error) {
	e.logger.Error(msg, requestFields(r, err)...)
}

// LogWithFields logs an error with additional fields.
func (e *ErrorLogger) LogWithFields(r *http.Request, msg string, err error, fields ...zap.Field) {
	e.logger.Error(msg, append(requestFields(r, err), fields...)...)
}

func requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("client_ip", network.ClientIP(r)),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fields = append(fields, zap.String("user_id", u.ID))
	}
	return fields
}

// PageVM is the view model for an error page.
type PageVM struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler provides error page handlers.
type Handler struct{}

// NewHandler creates a new error Handler.
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, titleKey, messageKey string) {
	vm := PageVM{BaseVM: viewdata.NewBaseVM(r, "", "/courses"), Status: status}
	vm.Title = vm.T(titleKey)
	vm.Message = vm.T(messageKey)

	w.WriteHeader(status)
	templates.Render(w, r, "errors/page", vm)
}

// Forbidden renders the 403 page. Students reach it when they open the editor.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "error.forbidden", "common.unauthorized")
}

// Unauthorized renders the 401 page.
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusUnauthorized, "error.unauthorized", "common.authError")
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error.notFound", "error.notFoundMessage")
}

// InternalError renders the 500 page.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusInternalServerError, "error.internal", "error.internalMessage")
}
