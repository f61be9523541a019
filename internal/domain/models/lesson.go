// internal/domain/models/lesson.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ContentPlaceholder replaces empty block content on save. The backend
// model rejects empty content fields.
const ContentPlaceholder = "-"

// Lesson is a lesson as the UyghurLearn backend returns it.
// Content holds the JSON-encoded block list and Content2 the description.
type Lesson struct {
	ID            string     `json:"_id,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Content2      string     `json:"content2"`
	Description   string     `json:"description,omitempty"` // older records
	Course        CourseRef  `json:"course"`
	Image         string     `json:"image"`
	Image2        string     `json:"image2"`
	LinkOnYouTube string     `json:"linkonyoutube"`
	Order         int        `json:"order"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`

	// ContentInvalid is set when the stored content was not a string, for
	// example an array written by an older client. Content is then empty.
	ContentInvalid bool `json:"-"`
}

// UnmarshalJSON decodes a lesson, accepting any JSON value for content.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	type plain Lesson
	aux := struct {
		*plain
		Content json.RawMessage `json:"content"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.Content, l.ContentInvalid = contentString(aux.Content)
	return nil
}

// contentString returns raw as a string when it is a JSON string. Missing
// and null content are empty and valid; any other value is reported invalid.
func contentString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] != '"' {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true
	}
	return s, false
}

// DescriptionText returns the lesson description, preferring content2.
func (l Lesson) DescriptionText() string {
	if l.Content2 != "" {
		return l.Content2
	}
	return l.Description
}

// LessonPayload is the create and update request body.
type LessonPayload struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Content2      string `json:"content2"`
	Course        string `json:"course"`
	Image         string `json:"image"`
	Image2        string `json:"image2"`
	LinkOnYouTube string `json:"linkonyoutube"`
	Order         int    `json:"order"`
}

// CourseRef is a lesson's course reference. The backend sends either the
// course id as a string or the populated course object.
type CourseRef struct {
	ID string
}

// UnmarshalJSON accepts "id", {"_id": "id", ...} and null.
func (c *CourseRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		c.ID = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	var obj struct {
		ID  string `json:"_id"`
		Alt string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("course reference: %w", err)
	}
	c.ID = obj.ID
	if c.ID == "" {
		c.ID = obj.Alt
	}
	return nil
}

// MarshalJSON writes the reference as a plain id string.
func (c CourseRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ID)
}
