package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chapter is a value record embedded in its course. It has no identity of
// its own and is stored as part of the course row.
type Chapter struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Description string `json:"description" validate:"required"`
	VideoLink   string `json:"videoLink,omitempty"`
	Duration    int    `json:"duration" validate:"gte=0"`
}

// Course represents a learning course
type Course struct {
	ID             uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"_id"`
	Category       string                       `json:"category" validate:"required"`
	Title          string                       `json:"title" validate:"required"`
	Description    string                       `json:"description" validate:"required"`
	Duration       int                          `json:"duration" validate:"gte=0"` // duration in hours
	InstructorName string                       `json:"instructorName" validate:"required"`
	Language       string                       `json:"language" validate:"required"`
	Level          string                       `json:"level" validate:"required"`
	Price          int                          `json:"price" validate:"gte=0"`
	Status         string                       `json:"status" validate:"required,oneof=published draft"`
	Visibility     string                       `json:"visibility" validate:"required,oneof=public private"`
	Chapters       datatypes.JSONSlice[Chapter] `json:"chapters" validate:"dive"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}

// BeforeCreate assigns the generated identifier.
func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate checks required fields and enum membership. It returns one
// violation message per offending field; an empty result means the course
// may be written.
func (c *Course) Validate() map[string]string {
	if err := validate.Struct(c); err != nil {
		return violations(err)
	}
	return nil
}
