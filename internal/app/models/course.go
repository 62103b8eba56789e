package models

import "time"

// Level represents the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelAllLevels    Level = "All Levels"
)

// ValidLevel reports whether l is one of the known levels.
func ValidLevel(l Level) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels:
		return true
	}
	return false
}

// LectureType categorizes a curriculum lecture.
type LectureType string

const (
	LectureVideo      LectureType = "video"
	LectureQuiz       LectureType = "quiz"
	LectureAssignment LectureType = "assignment"
	LectureText       LectureType = "text"
)

// Lecture is a single item in a curriculum section.
type Lecture struct {
	Title    string      `json:"title"`
	Duration string      `json:"duration" example:"10:23"`
	Type     LectureType `json:"type" example:"video"`
	Preview  bool        `json:"preview,omitempty"`
}

// Section is an ordered group of lectures.
type Section struct {
	Title    string    `json:"title"`
	Lectures []Lecture `json:"lectures"`
}

// Curriculum is the ordered course outline.
type Curriculum struct {
	Sections []Section `json:"sections"`
}

// InstructorRef is the denormalized instructor info embedded in a course.
// It is not a foreign key into a separate instructor table.
type InstructorRef struct {
	ID     string `json:"id" example:"101"`
	Name   string `json:"name" example:"Dr. Sarah Chen"`
	Avatar string `json:"avatar,omitempty"`
}

// Course represents a catalog course.
type Course struct {
	ID              string        `json:"id" example:"1"`
	Slug            string        `json:"slug" example:"machine-learning-fundamentals"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"longDescription,omitempty"`
	Instructor      InstructorRef `json:"instructor"`
	Rating          float64       `json:"rating" example:"4.9"`
	ReviewCount     int           `json:"reviewCount"`
	StudentCount    int           `json:"studentCount"`
	Duration        string        `json:"duration" example:"24 hours"`
	Level           Level         `json:"level" example:"Beginner"`
	Price           float64       `json:"price" example:"89.99"`
	DiscountPrice   *float64      `json:"discountPrice,omitempty"`
	Image           string        `json:"image,omitempty"`
	Category        string        `json:"category" example:"Data Science"`
	Tags            []string      `json:"tags"`
	AIEnhanced      bool          `json:"aiEnhanced"`
	Featured        bool          `json:"featured,omitempty"`
	LastUpdated     time.Time     `json:"lastUpdated"`
	Language        string        `json:"language" example:"English"`
	Curriculum      *Curriculum   `json:"curriculum,omitempty"`
	Requirements    []string      `json:"requirements,omitempty"`
	Objectives      []string      `json:"objectives,omitempty"`
}

// EffectivePrice returns the discount price when one is set, otherwise the
// list price.
func (c *Course) EffectivePrice() float64 {
	if c.DiscountPrice != nil {
		return *c.DiscountPrice
	}
	return c.Price
}
