// internal/app/features/lessoneditor/templates.go
package lessoneditor

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "lessoneditor",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
