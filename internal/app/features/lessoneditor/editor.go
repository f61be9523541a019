// internal/app/features/lessoneditor/editor.go
package lessoneditor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blockform"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/inputval"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/viewdata"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.uber.org/zap"
)

func draftPath(id string) string {
	return "/lessons/drafts/" + url.PathEscape(id)
}

func coursePath(id string) string {
	return "/course/" + url.PathEscape(id)
}

type newLessonInput struct {
	CourseID string `validate:"required,objectid" label:"Course ID"`
}

// ServeNew handles GET /lessons/new?courseId=... and opens an empty draft.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimSpace(query.Get(r, "courseId"))
	if res := inputval.Validate(newLessonInput{CourseID: courseID}); res.HasErrors() {
		key := "lesson.courseInvalid"
		if res.FirstRule() == inputval.RuleRequired {
			key = "lesson.courseRequired"
		}
		h.renderUnavailable(w, r, http.StatusBadRequest, key)
		return
	}

	u, _ := auth.CurrentUser(r)
	d := h.drafts.Create(u.ID, lessonsave.Loaded{CourseID: courseID})
	h.logger.Debug("new lesson draft opened",
		zap.String("draft_id", d.ID()),
		zap.String("course_id", courseID))
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// ServeEdit handles GET /lessons/{lessonID}/edit and opens a draft of the stored lesson.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonID")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Backend(), h.logger, "lesson load")
	defer cancel()

	loaded, err := h.adapter.Load(ctx, lessonID)
	if err != nil {
		h.errLog.LogWithFields(r, "failed to load lesson", err, zap.String("lesson_id", lessonID))
		h.renderUnavailable(w, r, http.StatusBadGateway, lessonsave.MessageKey(err))
		return
	}

	u, _ := auth.CurrentUser(r)
	d := h.drafts.Create(u.ID, loaded)
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// ServeDraft handles GET /lessons/drafts/{draftID}.
func (h *Handler) ServeDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	vm := editorVM(h.baseVM(w, r), d.Snapshot())
	if query.Get(r, "tab") == "preview" {
		vm.Tab = "preview"
	}
	vm.Saved = query.Get(r, "saved") == "1"
	templates.Render(w, r, "lessoneditor/editor", vm)
}

// HandleMeta handles POST .../meta and stores the title and description.
func (h *Handler) HandleMeta(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	if err := d.SetMeta(r.FormValue("title"), r.FormValue("description")); err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// HandleAppend handles POST .../blocks. The new block opens in the dialog.
func (h *Handler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	kind, err := appendRequest{Type: r.FormValue("type")}.kind()
	if err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	b, err := d.AppendBlock(kind)
	if err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	http.Redirect(w, r, draftPath(d.ID())+"/blocks/"+url.PathEscape(b.BlockID()), http.StatusSeeOther)
}

// ServeBlock handles GET .../blocks/{blockID} and shows the dialog for a block.
func (h *Handler) ServeBlock(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	if err := d.OpenBlock(chi.URLParam(r, "blockID")); err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	templates.Render(w, r, "lessoneditor/editor", editorVM(h.baseVM(w, r), d.Snapshot()))
}

// HandleBlock handles POST .../blocks/{blockID}: the dialog's save button.
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	blockID := chi.URLParam(r, "blockID")

	s := d.Snapshot()
	var current models.Block
	for _, b := range s.Blocks {
		if b.BlockID() == blockID {
			current = b
			break
		}
	}
	if current == nil {
		h.renderEditorError(w, r, d, fmtBlockNotFound(blockID))
		return
	}

	vals := blockform.ValuesFromRequest(r)
	updated := blockform.Apply(current, vals)
	if err := blockform.Validate(updated); err != nil {
		// Keep the dialog open with what the user typed.
		base := h.baseVM(w, r)
		s.OpenBlockID = blockID
		vm := editorVM(base, s)
		vm.Dialog = dialogVM(base, current, vals)
		vm.Dialog.Error = base.T(blockform.MessageKey(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "lessoneditor/editor", vm)
		return
	}

	if err := d.UpdateBlock(updated); err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// HandleCancel handles POST .../blocks/{blockID}/cancel and closes the dialog unchanged.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	d.CloseDialog()
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// HandleDelete handles POST .../blocks/{blockID}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	if err := d.RemoveBlock(chi.URLParam(r, "blockID")); err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// HandleReorder handles POST .../reorder with form fields from and to.
func (h *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	from, err1 := strconv.Atoi(r.FormValue("from"))
	to, err2 := strconv.Atoi(r.FormValue("to"))
	if err1 != nil || err2 != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := d.Reorder(from, to); err != nil {
		h.renderEditorError(w, r, d, err)
		return
	}
	http.Redirect(w, r, draftPath(d.ID()), http.StatusSeeOther)
}

// HandleSave handles POST .../save. The form carries the title and description.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if _, has := r.PostForm["title"]; has {
		if err := d.SetMeta(r.PostFormValue("title"), r.PostFormValue("description")); err != nil {
			h.renderEditorError(w, r, d, err)
			return
		}
	}

	res, err := h.save(r.Context(), d, auth.Token(r))
	if err != nil {
		var se *lessonsave.SaveError
		if errors.As(err, &se) {
			h.errLog.LogWithFields(r, "lesson save failed", err, zap.String("draft_id", d.ID()))
		}
		h.renderEditorError(w, r, d, err)
		return
	}

	if res.Created {
		h.sm.AddFlash(w, r, "lesson.createSuccess")
		http.Redirect(w, r, coursePath(res.CourseID), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, draftPath(d.ID())+"?saved=1", http.StatusSeeOther)
}

// HandleDiscard handles POST .../discard and drops unsaved changes.
func (h *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.draftOrFail(w, r)
	if !ok {
		return
	}
	courseID := d.Snapshot().CourseID
	_ = h.drafts.Discard(d.ID(), d.Owner())
	if courseID == "" {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, coursePath(courseID), http.StatusSeeOther)
}

func (h *Handler) baseVM(w http.ResponseWriter, r *http.Request) viewdata.BaseVM {
	vm := viewdata.New(r)
	vm.AddFlashes(h.sm.Flashes(w, r))
	return vm
}

func (h *Handler) draftOrFail(w http.ResponseWriter, r *http.Request) (*drafts.Draft, bool) {
	d, err := h.openDraft(r, chi.URLParam(r, "draftID"))
	if err != nil {
		h.renderUnavailable(w, r, http.StatusNotFound, "lesson.draftNotFound")
		return nil, false
	}
	return d, true
}

func (h *Handler) renderEditorError(w http.ResponseWriter, r *http.Request, d *drafts.Draft, err error) {
	base := h.baseVM(w, r)
	base.AddError(errorKey(err))
	w.WriteHeader(errorStatus(err))
	templates.Render(w, r, "lessoneditor/editor", editorVM(base, d.Snapshot()))
}

func (h *Handler) renderUnavailable(w http.ResponseWriter, r *http.Request, status int, key string) {
	vm := UnavailableVM{BaseVM: viewdata.NewBaseVM(r, "", "/courses")}
	vm.Message = vm.T(key)
	vm.Title = vm.T("lesson.editTitle")
	w.WriteHeader(status)
	templates.Render(w, r, "lessoneditor/unavailable", vm)
}
