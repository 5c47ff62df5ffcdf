package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a value record embedded in its quiz.
type Question struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=1,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// Quiz holds one question set for a course. CourseID identifies the course
// but does not own it: deleting the course leaves its quizzes in place.
type Quiz struct {
	ID        uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"_id"`
	CourseID  uuid.UUID                     `gorm:"type:uuid;index" json:"courseId" validate:"required"`
	Questions datatypes.JSONSlice[Question] `json:"questions" validate:"required,min=1,dive"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}

// BeforeCreate assigns the generated identifier.
func (q *Quiz) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// Validate checks required fields and that every correct answer is one of
// its question's options. An empty result means the quiz may be written.
func (q *Quiz) Validate() map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(q); err != nil {
		errs = violations(err)
	}
	for i, question := range q.Questions {
		if question.CorrectAnswer == "" {
			continue // already reported by the required tag
		}
		if !slices.Contains(question.Options, question.CorrectAnswer) {
			errs[fmt.Sprintf("questions[%d].correctAnswer", i)] = "correctAnswer must be one of options!"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
