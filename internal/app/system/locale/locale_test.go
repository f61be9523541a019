package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestT_Fallbacks(t *testing.T) {
	if got := T(Russian, "lesson.saveError"); got != "Ошибка при сохранении урока." {
		t.Errorf("T(ru) = %q", got)
	}
	if got := T("de", "lesson.saveError"); got != "Error saving lesson." {
		t.Errorf("T(de) = %q, want English fallback", got)
	}
	if got := T(English, "no.such.key"); got != "no.such.key" {
		t.Errorf("T(missing) = %q, want key", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog[English] {
		if _, ok := catalog[Russian][key]; !ok {
			t.Errorf("ru catalogue missing %q", key)
		}
	}
	for key := range catalog[Russian] {
		if _, ok := catalog[English][key]; !ok {
			t.Errorf("en catalogue missing %q", key)
		}
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		accept string
		want   string
	}{
		{"no preference", "", "", English},
		{"cookie wins", Russian, "en-US", Russian},
		{"unsupported cookie ignored", "fr", "ru-RU,ru;q=0.9", Russian},
		{"accept russian", "", "ru-RU,ru;q=0.9,en;q=0.8", Russian},
		{"accept english", "", "en-GB", English},
		{"no supported match", "", "ja-JP", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(English) })

	SetDefault("xx")
	if Default() != English {
		t.Errorf("Default() = %q after unsupported SetDefault", Default())
	}
	SetDefault(Russian)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromRequest(r); got != Russian {
		t.Errorf("FromRequest() = %q, want configured default", got)
	}
}
