package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler()
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestForbidden_Returns403(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/forbidden", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.Forbidden(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestUnauthorized_Returns401(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/unauthorized", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.Unauthorized(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestNotFound_Returns404(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestInternalError_Returns500(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.InternalError(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestForbidden_ShowsMessage(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/forbidden", nil)
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()

	h.Forbidden(rec, req)

	rec.AssertContains(t, "You do not have permission to edit lessons.")
}

func TestErrorLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	errLog := NewErrorLogger(zap.New(core))
	if errLog == nil {
		t.Fatal("NewErrorLogger() returned nil")
	}

	req := httptest.NewRequest(http.MethodPost, "/lessons/drafts/x/save", nil)
	req = testutil.WithUser(req, testutil.TeacherUser())
	errLog.Log(req, "lesson save failed", stderrors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/lessons/drafts/x/save" || fields["method"] != http.MethodPost {
		t.Errorf("fields = %v", fields)
	}
	if fields["user_id"] == "" || fields["user_id"] == nil {
		t.Error("user_id should be logged for a signed-in user")
	}
}

func TestErrorLogger_LogWithFields(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	errLog := NewErrorLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	errLog.LogWithFields(req, "test error", nil, zap.String("lesson_id", "abc"))

	fields := logs.All()[0].ContextMap()
	if fields["lesson_id"] != "abc" {
		t.Errorf("lesson_id = %v", fields["lesson_id"])
	}
	if _, ok := fields["user_id"]; ok {
		t.Error("visitor requests should not log a user id")
	}
}
