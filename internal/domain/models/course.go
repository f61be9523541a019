// internal/domain/models/course.go
package models

// Course is a course as the UyghurLearn backend returns it.
type Course struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Language    string  `json:"language"`
	Level       string  `json:"level,omitempty"`
	Duration    float64 `json:"duration,omitempty"` // weeks
	Price       float64 `json:"price,omitempty"`
	Content     string  `json:"content"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}
