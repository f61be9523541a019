// Package lessonsave moves an edited lesson between the editor and the
// lesson backend.
//
// Save checks its preconditions locally before any request: a non-blank
// title, a course id in ObjectID hex form, and a course id that is not the
// lesson's own id. Load never fails on malformed stored content.
package lessonsave

import (
	"context"
	"fmt"
	"strings"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonwire"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Backend persists lessons. The REST client and the Mongo store both satisfy it.
type Backend interface {
	GetLesson(ctx context.Context, id string) (models.Lesson, error)
	CreateLesson(ctx context.Context, token string, p models.LessonPayload) (models.Lesson, error)
	UpdateLesson(ctx context.Context, token, id string, p models.LessonPayload) (models.Lesson, error)
}

// SaveInput is the editor state to persist.
type SaveInput struct {
	LessonID    string // empty for a new lesson
	CourseID    string
	Title       string
	Description string
	Blocks      []models.Block
}

// SaveResult reports what a successful save did.
type SaveResult struct {
	Created  bool
	LessonID string
	CourseID string
}

// Loaded is a lesson ready for editing.
type Loaded struct {
	LessonID    string
	CourseID    string
	Title       string
	Description string
	Order       int
	Blocks      []models.Block
}

// Adapter saves and loads lessons through a Backend.
type Adapter struct {
	backend Backend
	logger  *zap.Logger
}

// New creates an Adapter.
func New(backend Backend, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{backend: backend, logger: logger}
}

// IsCourseID reports whether s has the backend's identifier shape.
func IsCourseID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// Validate checks the save preconditions in order and returns the first failure.
func Validate(in SaveInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Code: CodeTitleRequired, MessageKey: "lesson.titleRequired"}
	}
	if in.CourseID == "" {
		return &ValidationError{Code: CodeCourseRequired, MessageKey: "lesson.courseRequired"}
	}
	if !IsCourseID(in.CourseID) {
		return &ValidationError{Code: CodeCourseInvalid, MessageKey: "lesson.courseInvalid"}
	}
	if in.LessonID != "" && in.CourseID == in.LessonID {
		return &ValidationError{Code: CodeCourseIsLesson, MessageKey: "lesson.courseIsLesson"}
	}
	return nil
}

// Payload builds the create/update request body for in.
func Payload(in SaveInput) (models.LessonPayload, error) {
	content, err := lessonwire.EncodeContent(in.Blocks)
	if err != nil {
		return models.LessonPayload{}, err
	}
	return models.LessonPayload{
		Title:    in.Title,
		Content:  content,
		Content2: in.Description,
		Course:   in.CourseID,
		Order:    0,
	}, nil
}

// Save validates in and then creates or updates the lesson with one request.
func (a *Adapter) Save(ctx context.Context, in SaveInput, token string) (SaveResult, error) {
	if err := Validate(in); err != nil {
		return SaveResult{}, err
	}
	if token == "" {
		return SaveResult{}, ErrNoToken
	}

	p, err := Payload(in)
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode lesson content: %w", err)
	}

	if in.LessonID == "" {
		l, err := a.backend.CreateLesson(ctx, token, p)
		if err != nil {
			a.logger.Warn("lesson create failed",
				zap.String("course_id", in.CourseID),
				zap.Error(err))
			return SaveResult{}, &SaveError{Created: true, Err: err}
		}
		a.logger.Info("lesson created",
			zap.String("lesson_id", l.ID),
			zap.String("course_id", in.CourseID),
			zap.Int("blocks", len(in.Blocks)))
		return SaveResult{Created: true, LessonID: l.ID, CourseID: in.CourseID}, nil
	}

	if _, err := a.backend.UpdateLesson(ctx, token, in.LessonID, p); err != nil {
		a.logger.Warn("lesson update failed",
			zap.String("lesson_id", in.LessonID),
			zap.Error(err))
		return SaveResult{}, &SaveError{Err: err}
	}
	a.logger.Info("lesson updated",
		zap.String("lesson_id", in.LessonID),
		zap.Int("blocks", len(in.Blocks)))
	return SaveResult{LessonID: in.LessonID, CourseID: in.CourseID}, nil
}

// Load fetches a lesson for editing. Content that does not decode becomes an
// empty block list.
func (a *Adapter) Load(ctx context.Context, lessonID string) (Loaded, error) {
	l, err := a.backend.GetLesson(ctx, lessonID)
	if err != nil {
		return Loaded{}, &LoadError{LessonID: lessonID, Err: err}
	}

	blocks := lessonwire.DecodeContent(l.Content)
	if l.ContentInvalid || len(blocks) == 0 && strings.TrimSpace(l.Content) != "" && strings.TrimSpace(l.Content) != "[]" {
		a.logger.Debug("lesson content not decodable, starting empty",
			zap.String("lesson_id", lessonID))
	}

	id := l.ID
	if id == "" {
		id = lessonID
	}
	return Loaded{
		LessonID:    id,
		CourseID:    l.Course.ID,
		Title:       l.Title,
		Description: l.DescriptionText(),
		Order:       l.Order,
		Blocks:      blocks,
	}, nil
}
