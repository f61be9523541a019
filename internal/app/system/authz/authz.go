// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/normalize"
)

// UserCtx returns the user's role (lowercased), name, backend id and a found
// flag. Without a user it returns "visitor", "", "", false.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return "visitor", "", "", false
	}
	return normalize.Role(user.Role), user.Name, user.ID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsLoggedIn reports whether there is a user in the request context.
func IsLoggedIn(r *http.Request) bool {
	_, _, _, ok := UserCtx(r)
	return ok
}

// HasRole reports whether the current user has one of the given roles.
func HasRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, allowed := range roles {
		if normalize.Role(allowed) == role {
			return true
		}
	}
	return false
}

// CanEditLessons reports whether the current user may create and edit lessons.
func CanEditLessons(r *http.Request) bool {
	return HasRole(r, "admin", "teacher")
}
