// internal/app/features/lessoneditor/routes.go
package lessoneditor

import (
	"github.com/go-chi/chi/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
)

// Routes returns the editor pages, mounted at /lessons.
// Access is restricted to admin and teacher roles.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireEditor)

	r.Get("/new", h.ServeNew)
	r.Get("/{lessonID}/edit", h.ServeEdit)

	r.Route("/drafts/{draftID}", func(dr chi.Router) {
		dr.Get("/", h.ServeDraft)
		dr.Post("/meta", h.HandleMeta)
		dr.Post("/blocks", h.HandleAppend)
		dr.Get("/blocks/{blockID}", h.ServeBlock)
		dr.Post("/blocks/{blockID}", h.HandleBlock)
		dr.Post("/blocks/{blockID}/cancel", h.HandleCancel)
		dr.Post("/blocks/{blockID}/delete", h.HandleDelete)
		dr.Post("/reorder", h.HandleReorder)
		dr.Post("/save", h.HandleSave)
		dr.Post("/discard", h.HandleDiscard)
	})

	return r
}

// APIRoutes returns the draft JSON API, mounted at /api/drafts.
func APIRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireEditor)

	r.Get("/{draftID}", h.APIGet)
	r.Put("/{draftID}/meta", h.APIMeta)
	r.Post("/{draftID}/blocks", h.APIAppend)
	r.Put("/{draftID}/blocks/{blockID}", h.APIUpdateBlock)
	r.Delete("/{draftID}/blocks/{blockID}", h.APIDeleteBlock)
	r.Post("/{draftID}/reorder", h.APIReorder)
	r.Post("/{draftID}/save", h.APISave)

	return r
}
