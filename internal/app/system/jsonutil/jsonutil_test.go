package jsonutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{"200 OK with data", http.StatusOK, map[string]string{"message": "hello"}, http.StatusOK, `{"message":"hello"}`},
		{"201 Created with data", http.StatusCreated, map[string]int{"order": 3}, http.StatusCreated, `{"order":3}`},
		{"nil data", http.StatusOK, nil, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.status, tt.data)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if body := strings.TrimSpace(rec.Body.String()); body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "m") }, http.StatusBadRequest},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "m") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "m") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "m") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "m") }, http.StatusConflict},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "m") }, http.StatusInternalServerError},
		{"bad gateway", func(w http.ResponseWriter) { BadGateway(w, "m") }, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Error != "m" || body.Code != "" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestErrorCodeAndValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorCode(rec, http.StatusConflict, "saving", "Save in progress")
	if !strings.Contains(rec.Body.String(), `"code":"saving"`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	ValidationError(rec, "title_required", "Title is required", map[string]string{"title": "required"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
	var got struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Code != "title_required" || got.Fields["title"] != "required" {
		t.Errorf("body = %+v", got)
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestDecode(t *testing.T) {
	type input struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"from":1,"to":0}`, false},
		{"empty", ``, true},
		{"malformed", `{"from":`, true},
		{"unknown field", `{"from":1,"extra":true}`, true},
		{"trailing data", `{"from":1}{"to":2}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var in input
			err := Decode(r, &in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode() err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && in.From != 1 {
				t.Errorf("From = %d", in.From)
			}
		})
	}
}
