// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	coursesfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/courses"
	coursestore "github.com/uyghurconnect/uyghurlearn/internal/app/store/courses"
	lessonstore "github.com/uyghurconnect/uyghurlearn/internal/app/store/lessons"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// LessonBackend is everything the features need from lesson storage.
// *backendapi.Client and *directStore both satisfy it.
type LessonBackend interface {
	lessonsave.Backend
	coursesfeature.Catalog
	Ping(ctx context.Context) error
}

// directStore serves lessons and courses from the backend's own database.
// Tokens are accepted and ignored; the database has no per-user access control.
type directStore struct {
	lessons *lessonstore.Store
	courses *coursestore.Store
	client  *mongo.Client
}

func newDirectStore(client *mongo.Client, db *mongo.Database) *directStore {
	return &directStore{
		lessons: lessonstore.New(db),
		courses: coursestore.New(db),
		client:  client,
	}
}

func (d *directStore) GetLesson(ctx context.Context, id string) (models.Lesson, error) {
	return d.lessons.GetLesson(ctx, id)
}

func (d *directStore) ListLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	return d.lessons.ListLessonsByCourse(ctx, courseID)
}

func (d *directStore) CreateLesson(ctx context.Context, token string, p models.LessonPayload) (models.Lesson, error) {
	return d.lessons.CreateLesson(ctx, token, p)
}

func (d *directStore) UpdateLesson(ctx context.Context, token, id string, p models.LessonPayload) (models.Lesson, error) {
	return d.lessons.UpdateLesson(ctx, token, id, p)
}

func (d *directStore) DeleteLesson(ctx context.Context, token, id string) error {
	return d.lessons.DeleteLesson(ctx, token, id)
}

func (d *directStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	return d.courses.ListCourses(ctx)
}

func (d *directStore) GetCourse(ctx context.Context, id string) (models.Course, error) {
	return d.courses.GetCourse(ctx, id)
}

func (d *directStore) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}
