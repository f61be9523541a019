package testutil

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FakeBackend is an in-memory lesson backend for handler tests.
// Set the Err fields to make the matching call fail.
type FakeBackend struct {
	mu      sync.Mutex
	lessons map[string]models.Lesson
	courses map[string]models.Course

	Creates     int
	Updates     int
	Deletes     int
	LastToken   string
	LastPayload models.LessonPayload

	GetErr    error
	SaveErr   error
	DeleteErr error
	PingErr   error

	// LoginToken is returned by Login for any credentials in Users.
	LoginToken string
	Users      map[string]string // username -> password
}

// NewFakeBackend returns an empty FakeBackend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		lessons: make(map[string]models.Lesson),
		courses: make(map[string]models.Course),
		Users:   make(map[string]string),
	}
}

// AddCourse stores a course and returns it with an id.
func (f *FakeBackend) AddCourse(c models.Course) models.Course {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	f.courses[c.ID] = c
	return c
}

// AddLesson stores a lesson and returns it with an id.
func (f *FakeBackend) AddLesson(l models.Lesson) models.Lesson {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.ID == "" {
		l.ID = primitive.NewObjectID().Hex()
	}
	f.lessons[l.ID] = l
	return l
}

// Lesson returns a stored lesson.
func (f *FakeBackend) Lesson(id string) (models.Lesson, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lessons[id]
	return l, ok
}

func notFound() error {
	return &backendapi.HTTPError{StatusCode: http.StatusNotFound, Message: "not found"}
}

// GetLesson implements the lesson backend.
func (f *FakeBackend) GetLesson(_ context.Context, id string) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return models.Lesson{}, f.GetErr
	}
	l, ok := f.lessons[id]
	if !ok {
		return models.Lesson{}, notFound()
	}
	return l, nil
}

// ListLessonsByCourse returns the course's lessons sorted by order.
func (f *FakeBackend) ListLessonsByCourse(_ context.Context, courseID string) ([]models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	out := []models.Lesson{}
	for _, l := range f.lessons {
		if l.Course.ID == courseID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateLesson implements the lesson backend.
func (f *FakeBackend) CreateLesson(_ context.Context, token string, p models.LessonPayload) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Creates++
	f.LastToken = token
	f.LastPayload = p
	if f.SaveErr != nil {
		return models.Lesson{}, f.SaveErr
	}
	l := fromPayload(primitive.NewObjectID().Hex(), p)
	f.lessons[l.ID] = l
	return l, nil
}

// UpdateLesson implements the lesson backend.
func (f *FakeBackend) UpdateLesson(_ context.Context, token, id string, p models.LessonPayload) (models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updates++
	f.LastToken = token
	f.LastPayload = p
	if f.SaveErr != nil {
		return models.Lesson{}, f.SaveErr
	}
	if _, ok := f.lessons[id]; !ok {
		return models.Lesson{}, notFound()
	}
	l := fromPayload(id, p)
	f.lessons[id] = l
	return l, nil
}

// DeleteLesson implements the lesson backend.
func (f *FakeBackend) DeleteLesson(_ context.Context, token, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deletes++
	f.LastToken = token
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.lessons[id]; !ok {
		return notFound()
	}
	delete(f.lessons, id)
	return nil
}

// ListCourses returns all courses sorted by name.
func (f *FakeBackend) ListCourses(_ context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetCourse returns a course by id.
func (f *FakeBackend) GetCourse(_ context.Context, id string) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return models.Course{}, f.GetErr
	}
	c, ok := f.courses[id]
	if !ok {
		return models.Course{}, notFound()
	}
	return c, nil
}

// Ping reports PingErr.
func (f *FakeBackend) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PingErr
}

// Login checks Users and returns LoginToken.
func (f *FakeBackend) Login(_ context.Context, username, password string) (backendapi.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pw, ok := f.Users[username]; !ok || pw != password {
		return backendapi.LoginResult{}, &backendapi.HTTPError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	return backendapi.LoginResult{Token: f.LoginToken}, nil
}

func fromPayload(id string, p models.LessonPayload) models.Lesson {
	now := time.Now().UTC()
	return models.Lesson{
		ID:            id,
		Title:         p.Title,
		Content:       p.Content,
		Content2:      p.Content2,
		Course:        models.CourseRef{ID: p.Course},
		Image:         p.Image,
		Image2:        p.Image2,
		LinkOnYouTube: p.LinkOnYouTube,
		Order:         p.Order,
		UpdatedAt:     &now,
	}
}

// TestSessionKey signs cookies in tests.
const TestSessionKey = "xK8nP2mQ9rT5vW7yB3cF6hJ0lN4sU1wZ"

// NewSessionManager returns a cookie session manager for handler tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(TestSessionKey, "", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}
