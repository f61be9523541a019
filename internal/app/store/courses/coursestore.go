// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no course has the given id.
var ErrNotFound = errors.New("course not found")

type courseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Language    string             `bson:"language"`
	Level       string             `bson:"level,omitempty"`
	Duration    float64            `bson:"duration"`
	Price       float64            `bson:"price"`
	Content     string             `bson:"content"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
}

func (d courseDoc) model() models.Course {
	return models.Course{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Language:    d.Language,
		Level:       d.Level,
		Duration:    d.Duration,
		Price:       d.Price,
		Content:     d.Content,
		Description: d.Description,
		Image:       d.Image,
	}
}

// Store reads courses directly from MongoDB.
type Store struct {
	c *mongo.Collection
}

// New creates a course store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// GetCourse returns a course by id.
func (s *Store) GetCourse(ctx context.Context, id string) (models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Course{}, ErrNotFound
	}
	var d courseDoc
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Course{}, ErrNotFound
		}
		return models.Course{}, err
	}
	return d.model(), nil
}

// ListCourses returns all courses sorted by name.
func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []courseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Course, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}

// Insert adds a course. Used for seeding and tests; course management
// belongs to the backend.
func (s *Store) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	d := courseDoc{
		ID:          primitive.NewObjectID(),
		Name:        c.Name,
		Language:    c.Language,
		Level:       c.Level,
		Duration:    c.Duration,
		Price:       c.Price,
		Content:     c.Content,
		Description: c.Description,
		Image:       c.Image,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Course{}, err
	}
	return d.model(), nil
}
