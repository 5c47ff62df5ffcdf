package quizValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnhub/middleware"
	"learnhub/models"
)

// UpdateQuizPayload carries the fields a PUT may change. The course
// reference is not re-validated on update; only creation checks it.
type UpdateQuizPayload struct {
	CourseID  *uuid.UUID         `json:"courseId"`
	Questions *[]models.Question `json:"questions"`
}

// Apply merges the supplied fields into quiz.
func (p *UpdateQuizPayload) Apply(quiz *models.Quiz) {
	if p.CourseID != nil {
		quiz.CourseID = *p.CourseID
	}
	if p.Questions != nil {
		quiz.Questions = *p.Questions
	}
}

// CreateQuiz validates the :courseId path parameter and the quiz payload.
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(c.Params("courseId"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
		}

		quiz := new(models.Quiz)
		if err := c.BodyParser(quiz); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// Identifier and timestamps are system-generated; the course
		// reference comes from the path, not the body.
		quiz.ID = uuid.Nil
		quiz.CourseID = courseID
		quiz.CreatedAt = time.Time{}
		quiz.UpdatedAt = time.Time{}

		if errs := quiz.Validate(); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("quiz", quiz)
		return c.Next()
	}
}

// CourseRef validates the :courseId path parameter for quiz listing.
func CourseRef() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(c.Params("courseId"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// QuizID validates the :id path parameter.
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quiz id!")
		}

		c.Locals("quizID", id)
		return c.Next()
	}
}

// UpdateQuiz validates the :id path parameter and parses a partial payload.
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quiz id!")
		}

		payload := new(UpdateQuizPayload)
		if err := c.BodyParser(payload); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("quizID", id)
		c.Locals("quizPayload", payload)
		return c.Next()
	}
}
