// Package drafts keeps the unsaved state of lesson editing sessions.
//
// A Draft is one user's in-progress edit of one lesson. It lives in memory
// until it is saved, discarded or swept after its idle TTL; nothing in a
// draft reaches the backend until an explicit save.
package drafts

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blocklist"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

var (
	// ErrNotFound is returned for unknown, expired or foreign drafts.
	ErrNotFound = errors.New("draft not found")
	// ErrSaving is returned when a draft is changed or saved while a save is in flight.
	ErrSaving = errors.New("draft save in progress")
)

// State is the editing state of a draft.
type State int

const (
	StateIdle    State = iota // empty, freshly loaded, or just persisted
	StateEditing              // changed since load or last save
	StateSaving               // a save request is outstanding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Draft is one editing session. All methods are safe for concurrent use.
type Draft struct {
	mu sync.Mutex

	id    string
	owner string
	now   func() time.Time

	lessonID    string
	courseID    string
	title       string
	description string
	order       int
	list        *blocklist.List
	openBlock   string
	state       State
	lastSaved   time.Time
	touched     time.Time
}

// Snapshot is a copy of a draft's state for rendering.
type Snapshot struct {
	ID          string
	Owner       string
	LessonID    string
	CourseID    string
	Title       string
	Description string
	Order       int
	Blocks      []models.Block
	OpenBlockID string
	State       State
	LastSaved   time.Time
	UpdatedAt   time.Time
}

// IsNew reports whether the lesson has never been saved.
func (s Snapshot) IsNew() bool { return s.LessonID == "" }

// OpenBlock returns the block currently open in the editor dialog.
func (s Snapshot) OpenBlock() (models.Block, bool) {
	if s.OpenBlockID == "" {
		return nil, false
	}
	for _, b := range s.Blocks {
		if b.BlockID() == s.OpenBlockID {
			return b, true
		}
	}
	return nil, false
}

// ID returns the draft id.
func (d *Draft) ID() string { return d.id }

// Owner returns the id of the user editing the draft.
func (d *Draft) Owner() string { return d.owner }

// Snapshot returns a copy of the current state.
func (d *Draft) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Draft) snapshotLocked() Snapshot {
	return Snapshot{
		ID:          d.id,
		Owner:       d.owner,
		LessonID:    d.lessonID,
		CourseID:    d.courseID,
		Title:       d.title,
		Description: d.description,
		Order:       d.order,
		Blocks:      d.list.Blocks(),
		OpenBlockID: d.openBlock,
		State:       d.state,
		LastSaved:   d.lastSaved,
		UpdatedAt:   d.touched,
	}
}

// mutate runs fn with the lock held, refusing while a save is in flight.
// A successful fn moves the draft to Editing when markEdited is set.
func (d *Draft) mutate(markEdited bool, fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateSaving {
		return ErrSaving
	}
	if err := fn(); err != nil {
		return err
	}
	if markEdited {
		d.state = StateEditing
	}
	d.touched = d.now()
	return nil
}

// SetMeta sets the title and description.
func (d *Draft) SetMeta(title, description string) error {
	return d.mutate(true, func() error {
		d.title = title
		d.description = description
		return nil
	})
}

// AppendBlock adds an empty block of kind at the end and opens it in the dialog.
func (d *Draft) AppendBlock(kind models.BlockKind) (models.Block, error) {
	var b models.Block
	err := d.mutate(true, func() error {
		var err error
		b, err = d.list.Append(kind)
		if err != nil {
			return err
		}
		d.openBlock = b.BlockID()
		return nil
	})
	return b, err
}

// RemoveBlock deletes a block. The dialog closes if it showed that block.
func (d *Draft) RemoveBlock(id string) error {
	return d.mutate(true, func() error {
		if err := d.list.Remove(id); err != nil {
			return err
		}
		if d.openBlock == id {
			d.openBlock = ""
		}
		return nil
	})
}

// UpdateBlock replaces a block with an edited value and closes the dialog.
func (d *Draft) UpdateBlock(b models.Block) error {
	return d.mutate(true, func() error {
		if err := d.list.Update(b); err != nil {
			return err
		}
		if d.openBlock == b.BlockID() {
			d.openBlock = ""
		}
		return nil
	})
}

// Reorder moves the block at src to dst.
func (d *Draft) Reorder(src, dst int) error {
	return d.mutate(true, func() error {
		return d.list.Reorder(src, dst)
	})
}

// MoveBlock moves the block with id to dst.
func (d *Draft) MoveBlock(id string, dst int) error {
	return d.mutate(true, func() error {
		return d.list.Move(id, dst)
	})
}

// OpenBlock opens the dialog for an existing block.
func (d *Draft) OpenBlock(id string) error {
	return d.mutate(false, func() error {
		if d.list.Index(id) < 0 {
			return fmt.Errorf("%w: %s", blocklist.ErrBlockNotFound, id)
		}
		d.openBlock = id
		return nil
	})
}

// CloseDialog closes the dialog without changing any block.
func (d *Draft) CloseDialog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.openBlock = ""
	d.touched = d.now()
}

// BeginSave moves the draft to Saving and returns what to persist.
func (d *Draft) BeginSave() (lessonsave.SaveInput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateSaving {
		return lessonsave.SaveInput{}, ErrSaving
	}
	d.state = StateSaving
	d.touched = d.now()
	return lessonsave.SaveInput{
		LessonID:    d.lessonID,
		CourseID:    d.courseID,
		Title:       d.title,
		Description: d.description,
		Blocks:      d.list.Blocks(),
	}, nil
}

// FinishSave ends a save started by BeginSave. On success the draft is Idle
// and remembers a newly created lesson id. On failure it returns to Editing
// with every edit kept.
func (d *Draft) FinishSave(res lessonsave.SaveResult, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateSaving {
		return
	}
	d.touched = d.now()
	if err != nil {
		d.state = StateEditing
		return
	}
	if d.lessonID == "" && res.LessonID != "" {
		d.lessonID = res.LessonID
	}
	d.state = StateIdle
	d.lastSaved = d.touched
}

func (d *Draft) expired(cutoff time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state != StateSaving && d.touched.Before(cutoff)
}
