// internal/app/store/lessons/lessonstore.go
package lessonstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no lesson has the given id.
var ErrNotFound = errors.New("lesson not found")

// ErrInvalidCourse is returned when a payload's course is not an ObjectID.
var ErrInvalidCourse = errors.New("invalid course id")

// lessonDoc mirrors a document in the backend's lessons collection.
// Content is kept raw because older documents may hold a non-string value.
type lessonDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       bson.RawValue      `bson:"content"`
	Content2      string             `bson:"content2"`
	Description   string             `bson:"description,omitempty"`
	Course        primitive.ObjectID `bson:"course"`
	Image         string             `bson:"image"`
	Image2        string             `bson:"image2"`
	LinkOnYouTube string             `bson:"linkonyoutube"`
	Order         int                `bson:"order"`
	CreatedAt     *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty"`
}

func (d lessonDoc) model() models.Lesson {
	l := models.Lesson{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Content2:      d.Content2,
		Description:   d.Description,
		Image:         d.Image,
		Image2:        d.Image2,
		LinkOnYouTube: d.LinkOnYouTube,
		Order:         d.Order,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if !d.Course.IsZero() {
		l.Course = models.CourseRef{ID: d.Course.Hex()}
	}
	switch d.Content.Type {
	case bsontype.String:
		l.Content = d.Content.StringValue()
	case 0, bsontype.Null, bsontype.Undefined:
	default:
		l.ContentInvalid = true
	}
	return l
}

func stringValue(s string) bson.RawValue {
	t, data, err := bson.MarshalValue(s)
	if err != nil {
		return bson.RawValue{}
	}
	return bson.RawValue{Type: t, Value: data}
}

// Store reads and writes lessons directly in MongoDB.
type Store struct {
	c *mongo.Collection
}

// New creates a lesson store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessons")}
}

// GetLesson returns a lesson by id.
func (s *Store) GetLesson(ctx context.Context, id string) (models.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Lesson{}, ErrNotFound
	}
	var d lessonDoc
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Lesson{}, ErrNotFound
		}
		return models.Lesson{}, err
	}
	return d.model(), nil
}

// ListLessonsByCourse returns a course's lessons sorted by order.
func (s *Store) ListLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return []models.Lesson{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"course": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []lessonDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Lesson, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}

// CreateLesson inserts a lesson. The token is ignored; callers are
// authorized before reaching the store.
func (s *Store) CreateLesson(ctx context.Context, _ string, p models.LessonPayload) (models.Lesson, error) {
	course, err := primitive.ObjectIDFromHex(p.Course)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("%w: %q", ErrInvalidCourse, p.Course)
	}
	now := time.Now().UTC()
	d := lessonDoc{
		ID:            primitive.NewObjectID(),
		Title:         p.Title,
		Content:       stringValue(p.Content),
		Content2:      p.Content2,
		Course:        course,
		Image:         p.Image,
		Image2:        p.Image2,
		LinkOnYouTube: p.LinkOnYouTube,
		Order:         p.Order,
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Lesson{}, err
	}
	return d.model(), nil
}

// UpdateLesson replaces the editable fields of a lesson.
func (s *Store) UpdateLesson(ctx context.Context, _ string, id string, p models.LessonPayload) (models.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Lesson{}, ErrNotFound
	}
	course, err := primitive.ObjectIDFromHex(p.Course)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("%w: %q", ErrInvalidCourse, p.Course)
	}

	update := bson.M{"$set": bson.M{
		"title":         p.Title,
		"content":       p.Content,
		"content2":      p.Content2,
		"course":        course,
		"image":         p.Image,
		"image2":        p.Image2,
		"linkonyoutube": p.LinkOnYouTube,
		"order":         p.Order,
		"updatedAt":     time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d lessonDoc
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Lesson{}, ErrNotFound
		}
		return models.Lesson{}, err
	}
	return d.model(), nil
}

// DeleteLesson removes a lesson.
func (s *Store) DeleteLesson(ctx context.Context, _ string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
