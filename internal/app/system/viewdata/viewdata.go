// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/authz"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
)

// SiteName is shown in the page header and title.
const SiteName = "UyghurLearn"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/courses"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserID     string
	Role       string
	UserName   string
	CanEdit    bool // admin or teacher

	// Page context
	Lang        string
	Title       string
	BackURL     string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)

	// One-time messages, already translated
	Notices []string
	Errors  []string
}

// New creates a BaseVM for r. This is the standard way to create a BaseVM
// for most handlers.
func New(r *http.Request) BaseVM {
	role, name, userID, signedIn := authz.UserCtx(r)

	return BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  signedIn,
		UserID:      userID,
		Role:        role,
		UserName:    name,
		CanEdit:     authz.CanEditLessons(r),
		Lang:        locale.FromRequest(r),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// NewBaseVM creates a BaseVM with a title and a back link.
// backDefault is used when the request carries no return path.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}

// T translates key into the page language. Templates call it as {{.T "key"}}.
func (vm BaseVM) T(key string) string {
	return locale.T(vm.Lang, key)
}

// AddNotice appends the translated message for key.
func (vm *BaseVM) AddNotice(key string) {
	vm.Notices = append(vm.Notices, vm.T(key))
}

// AddError appends the translated error message for key.
func (vm *BaseVM) AddError(key string) {
	vm.Errors = append(vm.Errors, vm.T(key))
}

// AddFlashes translates queued flash keys into notices.
func (vm *BaseVM) AddFlashes(keys []string) {
	for _, k := range keys {
		vm.AddNotice(k)
	}
}
