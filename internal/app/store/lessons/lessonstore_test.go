package lessonstore

import (
	"errors"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"github.com/uyghurconnect/uyghurlearn/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func payload(course, title string, order int) models.LessonPayload {
	return models.LessonPayload{
		Title:    title,
		Content:  `[{"id":"b1","type":"text","content":"Salam","order":0}]`,
		Content2: "First words",
		Course:   course,
		Order:    order,
	}
}

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if New(db) == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := primitive.NewObjectID().Hex()
	created, err := store.CreateLesson(ctx, "", payload(course, "Intro", 0))
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateLesson() should assign an id")
	}
	if created.CreatedAt == nil || created.UpdatedAt == nil {
		t.Error("timestamps should be set")
	}

	got, err := store.GetLesson(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetLesson() error = %v", err)
	}
	if got.Title != "Intro" {
		t.Errorf("Title = %q, want Intro", got.Title)
	}
	if got.Course.ID != course {
		t.Errorf("Course = %q, want %q", got.Course.ID, course)
	}
	if got.Content != payload(course, "Intro", 0).Content || got.ContentInvalid {
		t.Errorf("Content = %q invalid=%v", got.Content, got.ContentInvalid)
	}
	if got.Content2 != "First words" {
		t.Errorf("Content2 = %q", got.Content2)
	}
	if got.Image != "" || got.Image2 != "" || got.LinkOnYouTube != "" {
		t.Error("media fields should be empty")
	}
}

func TestStore_GetLesson_NonStringContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := primitive.NewObjectID()
	tests := []struct {
		name    string
		content any
		invalid bool
	}{
		{"array", bson.A{bson.M{"type": "text", "content": "x"}}, true},
		{"number", 42, true},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := primitive.NewObjectID()
			_, err := db.Collection("lessons").InsertOne(ctx, bson.M{
				"_id": id, "title": "Old lesson", "content": tt.content, "course": course, "order": 0,
			})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}

			got, err := store.GetLesson(ctx, id.Hex())
			if err != nil {
				t.Fatalf("GetLesson() error = %v", err)
			}
			if got.Content != "" || got.ContentInvalid != tt.invalid {
				t.Errorf("Content = %q invalid=%v, want empty invalid=%v", got.Content, got.ContentInvalid, tt.invalid)
			}
			if got.Title != "Old lesson" {
				t.Errorf("Title = %q", got.Title)
			}
		})
	}
}

func TestStore_CreateLesson_InvalidCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.CreateLesson(ctx, "", payload("not-a-course", "Intro", 0))
	if !errors.Is(err, ErrInvalidCourse) {
		t.Errorf("CreateLesson() error = %v, want ErrInvalidCourse", err)
	}
}

func TestStore_GetLesson_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetLesson(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetLesson(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetLesson(ctx, "bad"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetLesson(bad) error = %v, want ErrNotFound", err)
	}
}

func TestStore_UpdateLesson(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := primitive.NewObjectID().Hex()
	created, err := store.CreateLesson(ctx, "", payload(course, "Intro", 0))
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}

	p := payload(course, "Intro, revised", 0)
	p.Content = `[{"id":"b1","type":"spacer","content":"-","order":0}]`
	updated, err := store.UpdateLesson(ctx, "", created.ID, p)
	if err != nil {
		t.Fatalf("UpdateLesson() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed: %q -> %q", created.ID, updated.ID)
	}
	if updated.Title != "Intro, revised" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.Content != p.Content {
		t.Errorf("Content = %q", updated.Content)
	}

	if _, err := store.UpdateLesson(ctx, "", primitive.NewObjectID().Hex(), p); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateLesson(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListLessonsByCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	for _, p := range []models.LessonPayload{
		payload(course, "Third", 3),
		payload(course, "First", 1),
		payload(other, "Elsewhere", 0),
		payload(course, "Second", 2),
	} {
		if _, err := store.CreateLesson(ctx, "", p); err != nil {
			t.Fatalf("CreateLesson() error = %v", err)
		}
	}

	got, err := store.ListLessonsByCourse(ctx, course)
	if err != nil {
		t.Fatalf("ListLessonsByCourse() error = %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if len(got) != len(want) {
		t.Fatalf("got %d lessons, want %d", len(got), len(want))
	}
	for i, l := range got {
		if l.Title != want[i] {
			t.Errorf("lesson[%d] = %q, want %q", i, l.Title, want[i])
		}
	}

	empty, err := store.ListLessonsByCourse(ctx, "bad")
	if err != nil || len(empty) != 0 {
		t.Errorf("ListLessonsByCourse(bad) = %v, %v", empty, err)
	}
}

func TestStore_DeleteLesson(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.CreateLesson(ctx, "", payload(primitive.NewObjectID().Hex(), "Intro", 0))
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	if err := store.DeleteLesson(ctx, "", created.ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	if _, err := store.GetLesson(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetLesson after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteLesson(ctx, "", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteLesson() error = %v, want ErrNotFound", err)
	}
}
