package courseValidator

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnhub/middleware"
	"learnhub/models"
)

// ChapterPayload mirrors models.Chapter with a pointer duration, so an
// omitted duration is distinguishable from zero hours.
type ChapterPayload struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	VideoLink   string `json:"videoLink"`
	Duration    *int   `json:"duration"`
}

func (p ChapterPayload) toChapter() models.Chapter {
	chapter := models.Chapter{
		Title:       p.Title,
		Content:     p.Content,
		Description: p.Description,
		VideoLink:   p.VideoLink,
	}
	if p.Duration != nil {
		chapter.Duration = *p.Duration
	}
	return chapter
}

func toChapters(payloads []ChapterPayload) []models.Chapter {
	if payloads == nil {
		return nil
	}
	chapters := make([]models.Chapter, 0, len(payloads))
	for _, p := range payloads {
		chapters = append(chapters, p.toChapter())
	}
	return chapters
}

// chapterDurationViolations reports every chapter whose duration was omitted.
func chapterDurationViolations(payloads []ChapterPayload) map[string]string {
	errs := map[string]string{}
	for i, p := range payloads {
		if p.Duration == nil {
			errs[fmt.Sprintf("chapters[%d].duration", i)] = "duration is required!"
		}
	}
	return errs
}

// CreateCoursePayload carries a full course body. duration is a pointer so
// an omitted field is rejected rather than read as zero; price stays
// optional and defaults to zero.
type CreateCoursePayload struct {
	Category       string           `json:"category"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Duration       *int             `json:"duration"`
	InstructorName string           `json:"instructorName"`
	Language       string           `json:"language"`
	Level          string           `json:"level"`
	Price          *int             `json:"price"`
	Status         string           `json:"status"`
	Visibility     string           `json:"visibility"`
	Chapters       []ChapterPayload `json:"chapters"`
}

func (p *CreateCoursePayload) toCourse() *models.Course {
	course := &models.Course{
		Category:       p.Category,
		Title:          p.Title,
		Description:    p.Description,
		InstructorName: p.InstructorName,
		Language:       p.Language,
		Level:          p.Level,
		Status:         p.Status,
		Visibility:     p.Visibility,
		Chapters:       toChapters(p.Chapters),
	}
	if p.Duration != nil {
		course.Duration = *p.Duration
	}
	if p.Price != nil {
		course.Price = *p.Price
	}
	return course
}

// violations collects omitted-duration fields plus the model's own checks.
func (p *CreateCoursePayload) violations(course *models.Course) map[string]string {
	errs := chapterDurationViolations(p.Chapters)
	if p.Duration == nil {
		errs["duration"] = "duration is required!"
	}
	for field, msg := range course.Validate() {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	return errs
}

// UpdateCoursePayload carries the fields a PUT may change. Nil fields were
// not supplied and keep their stored values.
type UpdateCoursePayload struct {
	Category       *string           `json:"category"`
	Title          *string           `json:"title"`
	Description    *string           `json:"description"`
	Duration       *int              `json:"duration"`
	InstructorName *string           `json:"instructorName"`
	Language       *string           `json:"language"`
	Level          *string           `json:"level"`
	Price          *int              `json:"price"`
	Status         *string           `json:"status"`
	Visibility     *string           `json:"visibility"`
	Chapters       *[]ChapterPayload `json:"chapters"`
}

// Apply merges the supplied fields into course.
func (p *UpdateCoursePayload) Apply(course *models.Course) {
	if p.Category != nil {
		course.Category = *p.Category
	}
	if p.Title != nil {
		course.Title = *p.Title
	}
	if p.Description != nil {
		course.Description = *p.Description
	}
	if p.Duration != nil {
		course.Duration = *p.Duration
	}
	if p.InstructorName != nil {
		course.InstructorName = *p.InstructorName
	}
	if p.Language != nil {
		course.Language = *p.Language
	}
	if p.Level != nil {
		course.Level = *p.Level
	}
	if p.Price != nil {
		course.Price = *p.Price
	}
	if p.Status != nil {
		course.Status = *p.Status
	}
	if p.Visibility != nil {
		course.Visibility = *p.Visibility
	}
	if p.Chapters != nil {
		course.Chapters = toChapters(*p.Chapters)
	}
}

// CreateCourse parses and validates a full course payload.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := new(CreateCoursePayload)
		if err := c.BodyParser(payload); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// Identifier and timestamps are system-generated; the model is
		// built from the payload, never decoded from the body directly.
		course := payload.toCourse()

		if errs := payload.violations(course); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("course", course)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

// UpdateCourse validates the :id path parameter and parses a partial payload.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
		}

		payload := new(UpdateCoursePayload)
		if err := c.BodyParser(payload); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// Replacement chapters must carry a duration, same as on create.
		if payload.Chapters != nil {
			if errs := chapterDurationViolations(*payload.Chapters); len(errs) > 0 {
				return middleware.ValidationErrorResponse(c, errs)
			}
		}

		c.Locals("courseID", id)
		c.Locals("coursePayload", payload)
		return c.Next()
	}
}
