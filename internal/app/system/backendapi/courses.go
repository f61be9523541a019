package backendapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

// ListCourses returns every course.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var cs []models.Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses", "", nil, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// GetCourse fetches a course by id.
func (c *Client) GetCourse(ctx context.Context, id string) (models.Course, error) {
	var course models.Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses/"+url.PathEscape(id), "", nil, &course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}
