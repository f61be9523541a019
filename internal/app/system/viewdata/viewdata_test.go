package viewdata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
)

func TestNew_Visitor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	vm := New(req)

	if vm.SiteName != SiteName {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if vm.IsLoggedIn || vm.CanEdit {
		t.Error("visitor should not be logged in or able to edit")
	}
	if vm.Role != "visitor" {
		t.Errorf("Role = %q, want visitor", vm.Role)
	}
	if vm.Lang != locale.Default() {
		t.Errorf("Lang = %q, want default", vm.Lang)
	}
}

func TestNew_Teacher(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "u1", Name: "Aygul", Role: "Teacher"})
	vm := New(req)

	if !vm.IsLoggedIn {
		t.Fatal("IsLoggedIn = false")
	}
	if vm.UserID != "u1" || vm.UserName != "Aygul" || vm.Role != "teacher" {
		t.Errorf("user fields = %q %q %q", vm.UserID, vm.UserName, vm.Role)
	}
	if !vm.CanEdit {
		t.Error("teacher should be able to edit")
	}
}

func TestNew_StudentCannotEdit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "u2", Role: "student"})
	if New(req).CanEdit {
		t.Error("student should not be able to edit")
	}
}

func TestNewBaseVM_BackURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/lessons/new", nil)
	vm := NewBaseVM(req, "New lesson", "/courses")
	if vm.Title != "New lesson" {
		t.Errorf("Title = %q", vm.Title)
	}
	if vm.BackURL == "" {
		t.Error("BackURL should fall back to the default")
	}
}

func TestT_UsesLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: locale.CookieName, Value: locale.Russian})
	vm := New(req)

	if got := vm.T("common.save"); got != "Сохранить" {
		t.Errorf("T(common.save) = %q", got)
	}
}

func TestAddFlashes(t *testing.T) {
	vm := BaseVM{Lang: locale.English}
	vm.AddFlashes([]string{"lesson.createSuccess"})
	vm.AddError("lesson.saveError")

	if len(vm.Notices) != 1 || vm.Notices[0] != "Lesson created successfully." {
		t.Errorf("Notices = %v", vm.Notices)
	}
	if len(vm.Errors) != 1 || vm.Errors[0] != "Error saving lesson." {
		t.Errorf("Errors = %v", vm.Errors)
	}
}
