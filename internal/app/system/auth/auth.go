// Package auth keeps the signed-in user in a signed session cookie.
//
// The session holds the backend bearer token next to the claims decoded from
// it. CurrentUser is the one place handlers read the user and token from.
package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/normalize"
	"go.uber.org/zap"
)

// Session error classification for logging.
type sessionErrorType int

const (
	sessionErrUnknown   sessionErrorType = iota
	sessionErrExpired                    // timestamp expired - normal
	sessionErrTampered                   // MAC invalid - potential attack
	sessionErrCorrupted                  // decode/decrypt failed - corruption or key rotation
	sessionErrBackend                    // store failure
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session keys                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	userNameKey  = "user_name"
	userRoleKey  = "user_role"
	tokenKey     = "backend_token"
	tokenExpKey  = "backend_token_exp"
	flashKey     = "flash"
	defaultName  = "uyghurlearn-session"
	minKeyLength = 32
)

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager wraps the cookie store and the auth middleware.
type SessionManager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
	now    func() time.Time
}

// NewSessionManager creates a SessionManager.
//
// Parameters:
//   - sessionKey: signing key for cookies (at least 32 chars when secure)
//   - name: cookie name ("uyghurlearn-session" if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: cookie lifetime
//   - secure: mark cookies Secure and refuse weak keys
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	isWeak := len(sessionKey) < minKeyLength || isDefaultKey(sessionKey)
	if secure && isWeak {
		return nil, &SessionConfigError{
			Message: "session key is too weak for production; provide ≥32 random chars (not the default dev key)",
		}
	}
	if isWeak {
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)),
			zap.Bool("is_default", isDefaultKey(sessionKey)))
	}

	if name == "" {
		name = defaultName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &SessionManager{
		store:  store,
		logger: logger,
		name:   name,
		now:    time.Now,
	}, nil
}

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string {
	return e.Message
}

// SessionName returns the cookie name.
func (sm *SessionManager) SessionName() string {
	return sm.name
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current user                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is the signed-in user as known from the backend token.
type SessionUser struct {
	ID           string
	Name         string
	Role         string
	BackendToken string
	ExpiresAt    time.Time
}

// CanEditLessons reports whether the user may create and edit lessons.
func (u *SessionUser) CanEditLessons() bool {
	switch normalize.Role(u.Role) {
	case "admin", "teacher":
		return true
	}
	return false
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user and a found flag from the request context.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// Token returns the backend token of the current user, or "".
func Token(r *http.Request) string {
	if u, ok := CurrentUser(r); ok {
		return u.BackendToken
	}
	return ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser puts the session's user into the request context. A session
// whose backend token has expired is cleared.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			sm.logSessionError(r, err)
		}

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:           getString(sess, userIDKey),
				Name:         getString(sess, userNameKey),
				Role:         getString(sess, userRoleKey),
				BackendToken: getString(sess, tokenKey),
			}
			if exp, ok := sess.Values[tokenExpKey].(int64); ok && exp > 0 {
				u.ExpiresAt = time.Unix(exp, 0)
			}

			switch {
			case u.ID == "" || u.BackendToken == "":
				clearAuth(sess)
				_ = sess.Save(r, w)
			case !u.ExpiresAt.IsZero() && !sm.now().Before(u.ExpiresAt):
				sm.logger.Info("session ended: backend token expired",
					zap.String("user_id", u.ID),
					zap.Time("expired_at", u.ExpiresAt))
				clearAuth(sess)
				_ = sess.Save(r, w)
			default:
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn sends visitors to the login page.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		unauthorized(w, r)
	})
}

// RequireRole allows only users with one of the given roles.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[normalize.Role(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				unauthorized(w, r)
				return
			}
			if _, has := set[normalize.Role(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireEditor allows admins and teachers.
func (sm *SessionManager) RequireEditor(next http.Handler) http.Handler {
	return sm.RequireRole("admin", "teacher")(next)
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(r.URL.RequestURI())

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Session lifecycle                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// CreateSession signs the user in with a backend token.
func (sm *SessionManager) CreateSession(w http.ResponseWriter, r *http.Request, token string) (*SessionUser, error) {
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, err
	}
	if err := claims.CheckExpiry(sm.now()); err != nil {
		return nil, err
	}

	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sess, _ = sm.store.New(r, sm.name)
	}

	name := claims.Name
	if name == "" {
		name = claims.Username
	}
	u := &SessionUser{
		ID:           claims.UserID(),
		Name:         name,
		Role:         normalize.Role(claims.Role),
		BackendToken: token,
		ExpiresAt:    claims.Expiry(),
	}

	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userRoleKey] = u.Role
	sess.Values[tokenKey] = token
	if !u.ExpiresAt.IsZero() {
		sess.Values[tokenExpKey] = u.ExpiresAt.Unix()
	} else {
		delete(sess.Values, tokenExpKey)
	}

	if err := sess.Save(r, w); err != nil {
		return nil, err
	}
	return u, nil
}

// DestroySession signs the user out.
func (sm *SessionManager) DestroySession(w http.ResponseWriter, r *http.Request) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}
	clearAuth(sess)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

// AddFlash queues a one-time message key for the next page.
func (sm *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, key string) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}
	sess.AddFlash(key, flashKey)
	_ = sess.Save(r, w)
}

// Flashes returns and clears queued message keys.
func (sm *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return nil
	}
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a SessionUser into the request context for testing.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func clearAuth(s *sessions.Session) {
	s.Values[isAuthKey] = false
	delete(s.Values, userIDKey)
	delete(s.Values, userNameKey)
	delete(s.Values, userRoleKey)
	delete(s.Values, tokenKey)
	delete(s.Values, tokenExpKey)
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range []string{
		"dev-only",
		"change-me",
		"placeholder",
		"default",
		"example",
		"insecure",
		"test-key",
		"secret123",
		"password",
	} {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (sm *SessionManager) logSessionError(r *http.Request, err error) {
	errType, category := classifySessionError(err)
	switch errType {
	case sessionErrExpired:
		sm.logger.Debug("session expired, starting fresh session",
			zap.String("category", category),
			zap.String("path", r.URL.Path))
	case sessionErrTampered:
		sm.logger.Warn("session MAC validation failed (possible tampering)",
			zap.String("category", category),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()))
	case sessionErrCorrupted:
		sm.logger.Info("session decode failed, starting fresh session",
			zap.String("category", category),
			zap.String("path", r.URL.Path))
	default:
		sm.logger.Error("session store error, starting fresh session",
			zap.Error(err),
			zap.String("path", r.URL.Path))
	}
}

func classifySessionError(err error) (sessionErrorType, string) {
	if err == nil {
		return sessionErrUnknown, "none"
	}

	scErr, ok := err.(securecookie.Error)
	if !ok {
		return sessionErrBackend, "unknown"
	}
	if !scErr.IsDecode() {
		return sessionErrBackend, "backend"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "expired timestamp"):
		return sessionErrExpired, "expired"
	case strings.Contains(msg, "mac") || strings.Contains(msg, "hash"):
		return sessionErrTampered, "mac_invalid"
	case strings.Contains(msg, "decrypt"):
		return sessionErrCorrupted, "decrypt_failed"
	case strings.Contains(msg, "base64") || strings.Contains(msg, "decode"):
		return sessionErrCorrupted, "decode_failed"
	default:
		return sessionErrCorrupted, "decode_other"
	}
}
