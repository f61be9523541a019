package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.uber.org/zap"
)

// GetLesson fetches a lesson by id.
func (c *Client) GetLesson(ctx context.Context, id string) (models.Lesson, error) {
	var l models.Lesson
	if err := c.doJSON(ctx, http.MethodGet, "/api/lessons/"+url.PathEscape(id), "", nil, &l); err != nil {
		return models.Lesson{}, err
	}
	if l.ID == "" {
		l.ID = id
	}
	return l, nil
}

// ListLessonsByCourse returns the lessons of a course.
func (c *Client) ListLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	var ls []models.Lesson
	if err := c.doJSON(ctx, http.MethodGet, "/api/lessons/course/"+url.PathEscape(courseID), "", nil, &ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// CreateLesson creates a lesson and returns the backend's copy.
func (c *Client) CreateLesson(ctx context.Context, token string, p models.LessonPayload) (models.Lesson, error) {
	if token == "" {
		return models.Lesson{}, ErrNoToken
	}
	var l models.Lesson
	if err := c.doJSON(ctx, http.MethodPost, "/api/lessons", token, p, &l); err != nil {
		if !errors.Is(err, ErrUndecodable) {
			return models.Lesson{}, err
		}
		// The backend accepted the lesson; only its reply is unreadable.
		c.logger.Warn("lesson created but response not decodable", zap.Error(err))
		return models.Lesson{}, nil
	}
	return l, nil
}

// UpdateLesson replaces the fields of an existing lesson.
func (c *Client) UpdateLesson(ctx context.Context, token, id string, p models.LessonPayload) (models.Lesson, error) {
	if token == "" {
		return models.Lesson{}, ErrNoToken
	}
	var l models.Lesson
	if err := c.doJSON(ctx, http.MethodPut, "/api/lessons/"+url.PathEscape(id), token, p, &l); err != nil {
		if !errors.Is(err, ErrUndecodable) {
			return models.Lesson{}, err
		}
		c.logger.Warn("lesson updated but response not decodable",
			zap.String("lesson_id", id),
			zap.Error(err))
		l = models.Lesson{}
	}
	if l.ID == "" {
		l.ID = id
	}
	return l, nil
}

// DeleteLesson removes a lesson.
func (c *Client) DeleteLesson(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrNoToken
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/lessons/"+url.PathEscape(id), token, nil, nil)
}
