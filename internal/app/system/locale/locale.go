// Package locale resolves user-facing message keys to text in the
// reader's language.
package locale

import (
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/text/language"
)

// Supported languages.
const (
	English = "en"
	Russian = "ru"
)

// CookieName is the cookie that stores an explicit language choice.
const CookieName = "lang"

var (
	supported = []language.Tag{language.English, language.Russian}
	codes     = []string{English, Russian}
	matcher   = language.NewMatcher(supported)

	mu          sync.RWMutex
	defaultLang = English
)

// SetDefault sets the language used when a request expresses no preference.
// Unsupported values are ignored.
func SetDefault(lang string) {
	if !IsSupported(lang) {
		return
	}
	mu.Lock()
	defaultLang = lang
	mu.Unlock()
}

// Default returns the configured default language.
func Default() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLang
}

// IsSupported reports whether lang has a catalogue.
func IsSupported(lang string) bool {
	for _, c := range codes {
		if c == lang {
			return true
		}
	}
	return false
}

// FromRequest picks the language for r: the lang cookie if it names a
// supported language, else the best Accept-Language match, else the default.
func FromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && IsSupported(c.Value) {
		return c.Value
	}
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return codes[idx]
}

// T returns the message for key in lang, falling back to English and then
// to the key itself.
func T(lang, key string) string {
	if msgs, ok := catalog[lang]; ok {
		if s, ok := msgs[key]; ok {
			return s
		}
	}
	if s, ok := catalog[English][key]; ok {
		return s
	}
	return key
}

// Tf formats the message for key with args.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
