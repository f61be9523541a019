package testutil

import (
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/uyghurconnect/uyghurlearn/internal/app/resources"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplatesOnce registers the shared layout and boots the template
// engine the first time it is called. Feature template sets register
// themselves from init, so importing the feature under test is enough for
// its pages to be found.
func BootTemplatesOnce() error {
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()

		logger := zap.NewNop()
		eng := templates.New(false)
		if bootErr = eng.Boot(logger); bootErr != nil {
			return
		}
		templates.UseEngine(eng, logger)
	})
	return bootErr
}

// MustBootTemplates boots templates and stops the test on failure.
func MustBootTemplates(t interface{ Fatalf(string, ...any) }) {
	if err := BootTemplatesOnce(); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
}
