package testutil

import (
	"context"
	"net/http"
)

// gorilla/csrf stores the masked token under this context key; csrf.Token
// reads it back, so pages render a predictable hidden field in tests.
const csrfTokenKey = "gorilla.csrf.Token"

// TestCSRFToken is the token value WithCSRFToken injects.
const TestCSRFToken = "test-csrf-token"

// WithCSRFToken puts TestCSRFToken into the request context. Handlers that
// build a viewdata.BaseVM call csrf.Token(r) and expect it to be present.
func WithCSRFToken(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), csrfTokenKey, TestCSRFToken))
}
