package lessonsave

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned when a save is attempted without a bearer token.
var ErrNoToken = errors.New("no authentication token")

// Validation codes, in the order Validate checks them.
const (
	CodeTitleRequired  = "title_required"
	CodeCourseRequired = "course_required"
	CodeCourseInvalid  = "course_invalid"
	CodeCourseIsLesson = "course_is_lesson"
)

// ValidationError is a save precondition failure. No request was sent.
type ValidationError struct {
	Code       string
	MessageKey string
}

func (e *ValidationError) Error() string {
	return "lesson validation failed: " + e.Code
}

// SaveError wraps a backend failure during create or update.
type SaveError struct {
	Created bool // true when the failed call was a create
	Err     error
}

func (e *SaveError) Error() string {
	op := "update"
	if e.Created {
		op = "create"
	}
	return fmt.Sprintf("lesson %s failed: %v", op, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// LoadError wraps a backend failure while fetching a lesson.
type LoadError struct {
	LessonID string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load lesson %s: %v", e.LessonID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MessageKey returns the locale key to show the user for err.
func MessageKey(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.MessageKey
	}
	var le *LoadError
	if errors.As(err, &le) {
		return "lesson.errorLoading"
	}
	if errors.Is(err, ErrNoToken) {
		return "common.authError"
	}
	return "lesson.saveError"
}
