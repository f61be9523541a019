// internal/app/features/lessoneditor/api.go
package lessoneditor

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blockform"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/inputval"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/jsonutil"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.uber.org/zap"
)

// DraftJSON is a draft as the editor script sees it.
type DraftJSON struct {
	ID          string               `json:"id"`
	LessonID    string               `json:"lesson_id,omitempty"`
	CourseID    string               `json:"course_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	State       string               `json:"state"`
	OpenBlockID string               `json:"open_block_id,omitempty"`
	Blocks      []models.BlockRecord `json:"blocks"`
}

// SaveJSON reports a save through the API.
type SaveJSON struct {
	Created  bool   `json:"created"`
	LessonID string `json:"lesson_id"`
	CourseID string `json:"course_id"`
	Redirect string `json:"redirect"`
	Message  string `json:"message"`
}

type metaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type appendRequest struct {
	Type string `json:"type" validate:"required,blockkind" label:"Block type"`
}

// kind validates the requested block type and returns it normalized.
func (req appendRequest) kind() (models.BlockKind, error) {
	if res := inputval.Validate(req); res.HasErrors() {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownBlockKind, req.Type)
	}
	return models.ParseBlockKind(req.Type)
}

type reorderRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

func draftJSON(s drafts.Snapshot) DraftJSON {
	out := DraftJSON{
		ID:          s.ID,
		LessonID:    s.LessonID,
		CourseID:    s.CourseID,
		Title:       s.Title,
		Description: s.Description,
		State:       s.State.String(),
		OpenBlockID: s.OpenBlockID,
		Blocks:      make([]models.BlockRecord, len(s.Blocks)),
	}
	for i, b := range s.Blocks {
		out.Blocks[i] = models.ToRecord(b)
	}
	return out
}

// apiError writes err as {"error": ..., "code": ...} in the caller's language.
func apiError(w http.ResponseWriter, r *http.Request, err error) {
	jsonutil.ErrorCode(w, errorStatus(err), errorCode(err), locale.T(locale.FromRequest(r), errorKey(err)))
}

func (h *Handler) apiDraft(w http.ResponseWriter, r *http.Request) (*drafts.Draft, bool) {
	d, err := h.openDraft(r, chi.URLParam(r, "draftID"))
	if err != nil {
		apiError(w, r, err)
		return nil, false
	}
	return d, true
}

// APIGet handles GET /api/drafts/{draftID}.
func (h *Handler) APIGet(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	jsonutil.OK(w, draftJSON(d.Snapshot()))
}

// APIMeta handles PUT /api/drafts/{draftID}/meta.
func (h *Handler) APIMeta(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	var req metaRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	if err := d.SetMeta(req.Title, req.Description); err != nil {
		apiError(w, r, err)
		return
	}
	jsonutil.OK(w, draftJSON(d.Snapshot()))
}

// APIAppend handles POST /api/drafts/{draftID}/blocks.
func (h *Handler) APIAppend(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	var req appendRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	kind, err := req.kind()
	if err != nil {
		apiError(w, r, err)
		return
	}
	b, err := d.AppendBlock(kind)
	if err != nil {
		apiError(w, r, err)
		return
	}
	jsonutil.Created(w, models.ToRecord(b))
}

// APIUpdateBlock handles PUT /api/drafts/{draftID}/blocks/{blockID}.
func (h *Handler) APIUpdateBlock(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	blockID := chi.URLParam(r, "blockID")

	var vals blockform.Values
	if err := jsonutil.Decode(r, &vals); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	var current models.Block
	for _, b := range d.Snapshot().Blocks {
		if b.BlockID() == blockID {
			current = b
			break
		}
	}
	if current == nil {
		apiError(w, r, fmtBlockNotFound(blockID))
		return
	}

	updated := blockform.Apply(current, vals)
	if err := blockform.Validate(updated); err != nil {
		apiError(w, r, err)
		return
	}
	if err := d.UpdateBlock(updated); err != nil {
		apiError(w, r, err)
		return
	}
	jsonutil.OK(w, models.ToRecord(updated))
}

// APIDeleteBlock handles DELETE /api/drafts/{draftID}/blocks/{blockID}.
func (h *Handler) APIDeleteBlock(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	if err := d.RemoveBlock(chi.URLParam(r, "blockID")); err != nil {
		apiError(w, r, err)
		return
	}
	jsonutil.OK(w, draftJSON(d.Snapshot()))
}

// APIReorder handles POST /api/drafts/{draftID}/reorder, sent when a drag ends.
func (h *Handler) APIReorder(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}
	var req reorderRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	if req.From == nil || req.To == nil {
		jsonutil.BadRequest(w, "from and to are required")
		return
	}
	if err := d.Reorder(*req.From, *req.To); err != nil {
		apiError(w, r, err)
		return
	}
	jsonutil.OK(w, draftJSON(d.Snapshot()))
}

// APISave handles POST /api/drafts/{draftID}/save.
func (h *Handler) APISave(w http.ResponseWriter, r *http.Request) {
	d, ok := h.apiDraft(w, r)
	if !ok {
		return
	}

	res, err := h.save(r.Context(), d, auth.Token(r))
	if err != nil {
		h.logger.Debug("draft save rejected",
			zap.String("draft_id", d.ID()),
			zap.Error(err))
		apiError(w, r, err)
		return
	}

	lang := locale.FromRequest(r)
	out := SaveJSON{Created: res.Created, LessonID: res.LessonID, CourseID: res.CourseID}
	if res.Created {
		h.sm.AddFlash(w, r, "lesson.createSuccess")
		out.Redirect = coursePath(res.CourseID)
		out.Message = locale.T(lang, "lesson.createSuccess")
	} else {
		out.Message = locale.T(lang, "lesson.updateSuccess")
	}
	jsonutil.OK(w, out)
}
