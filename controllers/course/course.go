package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseValidator "learnhub/validators/course"
)

// CourseHandler serves the course CRUD endpoints.
type CourseHandler struct {
	store *database.Store
}

func NewCourseHandler(store *database.Store) *CourseHandler {
	return &CourseHandler{store: store}
}

// CreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        course body courseValidator.CreateCoursePayload true "Course fields"
// @Success      201 {object} models.Course
// @Failure      400 {object} map[string]interface{}
// @Router       /courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	course, ok := c.Locals("course").(*models.Course)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if err := h.store.Db.Create(course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// GetAllCourses godoc
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200 {array} models.Course
// @Failure      500 {object} map[string]interface{}
// @Router       /courses [get]
func (h *CourseHandler) GetAllCourses(c *fiber.Ctx) error {
	courses := []models.Course{}
	if err := h.store.Db.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

// GetCourse godoc
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course id"
// @Success      200 {object} models.Course
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id := c.Locals("courseID").(uuid.UUID)

	var course models.Course
	if err := h.store.Db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course!")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// UpdateCourse godoc
// @Summary      Update a course by id
// @Description  Merges the supplied fields into the stored course; omitted fields keep their values.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id path string true "Course id"
// @Param        course body courseValidator.UpdateCoursePayload true "Fields to change"
// @Success      200 {object} models.Course
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Locals("courseID").(uuid.UUID)
	payload, ok := c.Locals("coursePayload").(*courseValidator.UpdateCoursePayload)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var course models.Course
	if err := h.store.Db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course!")
	}

	payload.Apply(&course)

	// The merged record must still satisfy the create-time invariants.
	if errs := course.Validate(); len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	if err := h.store.Db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// DeleteCourse godoc
// @Summary      Delete a course by id
// @Description  Removes the course. Quizzes referencing it are left in place.
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course id"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Locals("courseID").(uuid.UUID)

	var course models.Course
	if err := h.store.Db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course!")
	}

	// No cascade: quizzes referencing this course stay and keep a dangling
	// courseId.
	if err := h.store.Db.Delete(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	return middleware.MessageResponse(c, "Course deleted successfully!")
}
