package lessonsave

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

type fakeBackend struct {
	lessons map[string]models.Lesson
	creates []models.LessonPayload
	updates []models.LessonPayload
	tokens  []string
	err     error
	getErr  error
}

func (f *fakeBackend) calls() int { return len(f.creates) + len(f.updates) }

func (f *fakeBackend) GetLesson(_ context.Context, id string) (models.Lesson, error) {
	if f.getErr != nil {
		return models.Lesson{}, f.getErr
	}
	l, ok := f.lessons[id]
	if !ok {
		return models.Lesson{}, errors.New("not found")
	}
	return l, nil
}

func (f *fakeBackend) CreateLesson(_ context.Context, token string, p models.LessonPayload) (models.Lesson, error) {
	f.creates = append(f.creates, p)
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return models.Lesson{}, f.err
	}
	return models.Lesson{ID: "6500000000000000000000aa", Title: p.Title}, nil
}

func (f *fakeBackend) UpdateLesson(_ context.Context, token, id string, p models.LessonPayload) (models.Lesson, error) {
	f.updates = append(f.updates, p)
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return models.Lesson{}, f.err
	}
	return models.Lesson{ID: id, Title: p.Title}, nil
}

const courseID = "507f1f77bcf86cd799439011"

func TestSave_CreateIntro(t *testing.T) {
	fb := &fakeBackend{}
	a := New(fb, nil)

	in := SaveInput{
		CourseID: courseID,
		Title:    "Intro",
		Blocks:   []models.Block{models.TextBlock{ID: "b1", Content: "Hello"}},
	}
	res, err := a.Save(context.Background(), in, "tok")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !res.Created || res.CourseID != courseID || res.LessonID == "" {
		t.Errorf("unexpected result %+v", res)
	}
	if len(fb.creates) != 1 {
		t.Fatalf("creates = %d, want 1", len(fb.creates))
	}
	p := fb.creates[0]
	if p.Title != "Intro" || p.Course != courseID || p.Order != 0 {
		t.Errorf("payload = %+v", p)
	}
	if p.Image != "" || p.Image2 != "" || p.LinkOnYouTube != "" {
		t.Errorf("media fields should be empty: %+v", p)
	}

	var recs []map[string]any
	if err := json.Unmarshal([]byte(p.Content), &recs); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("content has %d blocks, want 1", len(recs))
	}
	r := recs[0]
	if r["type"] != "text" || r["content"] != "Hello" || r["order"] != float64(0) {
		t.Errorf("block = %v", r)
	}
	if id, _ := r["id"].(string); id == "" {
		t.Error("block id should be non-empty")
	}
	if fb.tokens[0] != "tok" {
		t.Errorf("token = %q", fb.tokens[0])
	}
}

func TestSave_Update(t *testing.T) {
	fb := &fakeBackend{}
	a := New(fb, nil)

	in := SaveInput{
		LessonID:    "6500000000000000000000bb",
		CourseID:    courseID,
		Title:       "Lesson 2",
		Description: "about greetings",
		Blocks: []models.Block{
			models.ImageBlock{ID: "i", URL: "https://x/y.png"},
			models.SpacerBlock{ID: "s"},
		},
	}
	res, err := a.Save(context.Background(), in, "tok")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Created || res.LessonID != in.LessonID {
		t.Errorf("unexpected result %+v", res)
	}
	if len(fb.updates) != 1 || len(fb.creates) != 0 {
		t.Fatalf("updates=%d creates=%d", len(fb.updates), len(fb.creates))
	}
	p := fb.updates[0]
	if p.Content2 != "about greetings" {
		t.Errorf("content2 = %q", p.Content2)
	}
	var recs []models.BlockRecord
	if err := json.Unmarshal([]byte(p.Content), &recs); err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.Content != models.ContentPlaceholder {
			t.Errorf("block %s content = %q, want placeholder", r.ID, r.Content)
		}
	}
	if recs[1].Order != 1 {
		t.Errorf("second block order = %d", recs[1].Order)
	}
}

func TestSave_RejectedWithoutRequest(t *testing.T) {
	tests := []struct {
		name     string
		in       SaveInput
		wantCode string
	}{
		{"empty title", SaveInput{CourseID: courseID, Title: ""}, CodeTitleRequired},
		{"blank title", SaveInput{CourseID: courseID, Title: "  \t\n"}, CodeTitleRequired},
		{"missing course", SaveInput{Title: "T"}, CodeCourseRequired},
		{"short course", SaveInput{Title: "T", CourseID: "507f1f77"}, CodeCourseInvalid},
		{"non hex course", SaveInput{Title: "T", CourseID: "507f1f77bcf86cd79943901z"}, CodeCourseInvalid},
		{"long course", SaveInput{Title: "T", CourseID: courseID + "00"}, CodeCourseInvalid},
		{"course is lesson", SaveInput{Title: "T", CourseID: courseID, LessonID: courseID}, CodeCourseIsLesson},
		{"title checked first", SaveInput{Title: "", CourseID: "bad", LessonID: "bad"}, CodeTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{}
			_, err := New(fb, nil).Save(context.Background(), tt.in, "tok")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if ve.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", ve.Code, tt.wantCode)
			}
			if MessageKey(err) != ve.MessageKey {
				t.Errorf("MessageKey = %q", MessageKey(err))
			}
			if fb.calls() != 0 {
				t.Errorf("backend called %d times", fb.calls())
			}
		})
	}
}

func TestSave_UppercaseHexAccepted(t *testing.T) {
	fb := &fakeBackend{}
	_, err := New(fb, nil).Save(context.Background(),
		SaveInput{Title: "T", CourseID: "507F1F77BCF86CD799439011"}, "tok")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestSave_NoToken(t *testing.T) {
	fb := &fakeBackend{}
	_, err := New(fb, nil).Save(context.Background(), SaveInput{Title: "T", CourseID: courseID}, "")
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if fb.calls() != 0 {
		t.Error("backend should not be called")
	}
	if MessageKey(err) != "common.authError" {
		t.Errorf("MessageKey = %q", MessageKey(err))
	}
}

func TestSave_BackendFailure(t *testing.T) {
	boom := errors.New("connection refused")
	fb := &fakeBackend{err: boom}
	a := New(fb, nil)

	blocks := []models.Block{models.TextBlock{ID: "a", Content: "x"}}
	_, err := a.Save(context.Background(), SaveInput{Title: "T", CourseID: courseID, Blocks: blocks}, "tok")

	var se *SaveError
	if !errors.As(err, &se) || !se.Created {
		t.Fatalf("err = %v, want create *SaveError", err)
	}
	if !errors.Is(err, boom) {
		t.Error("SaveError should unwrap to the backend error")
	}
	if MessageKey(err) != "lesson.saveError" {
		t.Errorf("MessageKey = %q", MessageKey(err))
	}
	if len(fb.creates) != 1 {
		t.Errorf("creates = %d, want exactly 1 (no retry)", len(fb.creates))
	}
	if blocks[0].(models.TextBlock).Content != "x" {
		t.Error("caller's blocks must not be modified")
	}
}

func TestLoad(t *testing.T) {
	fb := &fakeBackend{lessons: map[string]models.Lesson{
		"L1": {
			ID:       "L1",
			Title:    "Greetings",
			Content:  `[{"id":"b","type":"quote","content":"Salam","order":2},{"id":"a","type":"text","content":"Hi","order":1}]`,
			Content2: "desc",
			Course:   models.CourseRef{ID: courseID},
			Order:    3,
		},
		"L2": {ID: "L2", Title: "Broken", Content: "not valid json", Course: models.CourseRef{ID: courseID}},
		"L3": {ID: "L3", Title: "Legacy", Content: `{"type":"text"}`, Description: "old field"},
	}}
	a := New(fb, nil)
	ctx := context.Background()

	got, err := a.Load(ctx, "L1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Title != "Greetings" || got.CourseID != courseID || got.Description != "desc" || got.Order != 3 {
		t.Errorf("loaded = %+v", got)
	}
	if len(got.Blocks) != 2 || got.Blocks[0].BlockID() != "a" || got.Blocks[1].Position() != 1 {
		t.Errorf("blocks = %+v", got.Blocks)
	}

	got, err = a.Load(ctx, "L2")
	if err != nil {
		t.Fatalf("Load malformed: %v", err)
	}
	if len(got.Blocks) != 0 {
		t.Errorf("malformed content should load as empty, got %d blocks", len(got.Blocks))
	}

	got, err = a.Load(ctx, "L3")
	if err != nil {
		t.Fatalf("Load legacy: %v", err)
	}
	if len(got.Blocks) != 0 || got.Description != "old field" {
		t.Errorf("legacy = %+v", got)
	}
}

func TestLoad_NonStringContentFromBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"L4","title":"Array content","content":[{"type":"text","content":"x"}],"content2":"d","course":"` + courseID + `"}`))
	}))
	defer srv.Close()

	client, err := backendapi.New(backendapi.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("backendapi.New: %v", err)
	}

	got, err := New(client, nil).Load(context.Background(), "L4")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Blocks) != 0 {
		t.Errorf("non-string content should load as empty, got %d blocks", len(got.Blocks))
	}
	if got.Title != "Array content" || got.CourseID != courseID || got.Description != "d" {
		t.Errorf("loaded = %+v", got)
	}
}

func TestLoad_BackendFailure(t *testing.T) {
	fb := &fakeBackend{getErr: errors.New("timeout")}
	_, err := New(fb, nil).Load(context.Background(), "L1")
	var le *LoadError
	if !errors.As(err, &le) || le.LessonID != "L1" {
		t.Fatalf("err = %v, want *LoadError", err)
	}
	if MessageKey(err) != "lesson.errorLoading" {
		t.Errorf("MessageKey = %q", MessageKey(err))
	}
}
