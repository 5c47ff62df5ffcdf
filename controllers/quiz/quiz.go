package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	quizValidator "learnhub/validators/quiz"
)

// QuizHandler serves the quiz CRUD endpoints.
type QuizHandler struct {
	store *database.Store
}

func NewQuizHandler(store *database.Store) *QuizHandler {
	return &QuizHandler{store: store}
}

// CreateQuiz godoc
// @Summary      Create a quiz under a course
// @Description  Rejects creation with 404 when the referenced course does not exist.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        courseId path string true "Course id"
// @Param        quiz body models.Quiz true "Quiz fields"
// @Success      201 {object} models.Quiz
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /courses/{courseId}/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	quiz, ok := c.Locals("quiz").(*models.Quiz)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// The course must exist before anything is written. The check and the
	// insert are two store calls with nothing atomic between them: a course
	// deleted in the gap leaves an orphaned quiz, accepted for this domain.
	var course models.Course
	if err := h.store.Db.First(&course, "id = ?", quiz.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course!")
	}

	if err := h.store.Db.Create(quiz).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create quiz!")
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// ListQuizzes godoc
// @Summary      List the quizzes of a course
// @Description  Returns an empty list when the course has no quizzes or does not exist.
// @Tags         quizzes
// @Produce      json
// @Param        courseId path string true "Course id"
// @Success      200 {array} models.Quiz
// @Failure      400 {object} map[string]interface{}
// @Router       /courses/{courseId}/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	// Unlike create, no existence check on the course: an unknown course id
	// simply matches no quizzes.
	quizzes := []models.Quiz{}
	if err := h.store.Db.Where("course_id = ?", courseID).Find(&quizzes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch quizzes!")
	}

	return c.Status(fiber.StatusOK).JSON(quizzes)
}

// GetQuiz godoc
// @Summary      Get a quiz by id
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz id"
// @Success      200 {object} models.Quiz
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Locals("quizID").(uuid.UUID)

	var quiz models.Quiz
	if err := h.store.Db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch quiz!")
	}

	return c.Status(fiber.StatusOK).JSON(quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz by id
// @Description  Merges the supplied fields into the stored quiz; the course reference is not re-validated.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id path string true "Quiz id"
// @Param        quiz body quizValidator.UpdateQuizPayload true "Fields to change"
// @Success      200 {object} models.Quiz
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	id := c.Locals("quizID").(uuid.UUID)
	payload, ok := c.Locals("quizPayload").(*quizValidator.UpdateQuizPayload)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var quiz models.Quiz
	if err := h.store.Db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch quiz!")
	}

	payload.Apply(&quiz)

	if errs := quiz.Validate(); len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	if err := h.store.Db.Save(&quiz).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update quiz!")
	}

	return c.Status(fiber.StatusOK).JSON(quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz by id
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz id"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Locals("quizID").(uuid.UUID)

	var quiz models.Quiz
	if err := h.store.Db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch quiz!")
	}

	if err := h.store.Db.Delete(&quiz).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete quiz!")
	}

	return middleware.MessageResponse(c, "Quiz deleted successfully!")
}
