// internal/app/features/lessoneditor/handler.go
package lessoneditor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	errorsfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/errors"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blockform"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blocklist"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the lesson editor pages and the draft JSON API.
type Handler struct {
	adapter *lessonsave.Adapter
	drafts  *drafts.Registry
	sm      *auth.SessionManager
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a lesson editor Handler.
func NewHandler(adapter *lessonsave.Adapter, reg *drafts.Registry, sm *auth.SessionManager, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		adapter: adapter,
		drafts:  reg,
		sm:      sm,
		errLog:  errLog,
		logger:  logger,
	}
}

// openDraft returns the caller's draft named by id.
func (h *Handler) openDraft(r *http.Request, id string) (*drafts.Draft, error) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil, drafts.ErrNotFound
	}
	return h.drafts.Get(id, u.ID)
}

// save runs one save round trip for d. The draft is Saving for the duration.
func (h *Handler) save(ctx context.Context, d *drafts.Draft, token string) (lessonsave.SaveResult, error) {
	in, err := d.BeginSave()
	if err != nil {
		return lessonsave.SaveResult{}, err
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Save(), h.logger, "lesson save")
	res, err := h.adapter.Save(ctx, in, token)
	cancel()

	d.FinishSave(res, err)
	if err == nil && res.Created {
		// The editor leaves for the course page; the session is done.
		_ = h.drafts.Discard(d.ID(), d.Owner())
	}
	return res, err
}

// errorKey maps editor errors to locale keys.
func errorKey(err error) string {
	var ve *lessonsave.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.MessageKey
	case errors.Is(err, drafts.ErrNotFound):
		return "lesson.draftNotFound"
	case errors.Is(err, drafts.ErrSaving):
		return "lesson.saveInProgress"
	case errors.Is(err, blocklist.ErrBlockNotFound):
		return "block.notFound"
	case errors.Is(err, blockform.ErrContentRequired), errors.Is(err, blockform.ErrURLRequired):
		return blockform.MessageKey(err)
	}
	return lessonsave.MessageKey(err)
}

// errorStatus maps editor errors to HTTP status codes.
func errorStatus(err error) int {
	var ve *lessonsave.ValidationError
	var se *lessonsave.SaveError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, blockform.ErrContentRequired),
		errors.Is(err, blockform.ErrURLRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, drafts.ErrNotFound), errors.Is(err, blocklist.ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, drafts.ErrSaving):
		return http.StatusConflict
	case errors.Is(err, lessonsave.ErrNoToken):
		return http.StatusUnauthorized
	case errors.Is(err, blocklist.ErrIndexOutOfRange),
		errors.Is(err, blocklist.ErrKindChanged),
		errors.Is(err, models.ErrUnknownBlockKind):
		return http.StatusBadRequest
	case errors.As(err, &se):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorCode is the machine-readable code the JSON API reports.
func errorCode(err error) string {
	var ve *lessonsave.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Code
	case errors.Is(err, drafts.ErrNotFound):
		return "draft_not_found"
	case errors.Is(err, drafts.ErrSaving):
		return "save_in_progress"
	case errors.Is(err, blocklist.ErrBlockNotFound):
		return "block_not_found"
	case errors.Is(err, blocklist.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, blocklist.ErrKindChanged):
		return "kind_changed"
	case errors.Is(err, models.ErrUnknownBlockKind):
		return "unknown_block_type"
	case errors.Is(err, blockform.ErrContentRequired):
		return "content_required"
	case errors.Is(err, blockform.ErrURLRequired):
		return "url_required"
	case errors.Is(err, lessonsave.ErrNoToken):
		return "auth_error"
	}
	return "save_failed"
}

func fmtBlockNotFound(id string) error {
	return fmt.Errorf("%w: %s", blocklist.ErrBlockNotFound, id)
}

// summary is the one-line description of a block in the editor list.
func summary(b models.Block) string {
	var s string
	switch v := b.(type) {
	case models.TextBlock:
		s = v.Content
	case models.QuoteBlock:
		s = v.Content
	case models.ImageBlock:
		s = v.URL
	case models.VideoBlock:
		s = v.URL
	case models.LinkBlock:
		s = v.Text
		if s == "" {
			s = v.URL
		}
	}
	return truncate(s, 80)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
