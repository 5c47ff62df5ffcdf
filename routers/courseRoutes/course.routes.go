package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnhub/controllers/course"
	"learnhub/database"
	validators "learnhub/validators/course"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App, store *database.Store) {
	handler := controllers.NewCourseHandler(store)

	group := app.Group("/api/courses")

	group.Post("/", validators.CreateCourse(), handler.CreateCourse)
	group.Get("/", handler.GetAllCourses)
	group.Get("/:id", validators.CourseID(), handler.GetCourse)
	group.Put("/:id", validators.UpdateCourse(), handler.UpdateCourse)
	group.Delete("/:id", validators.CourseID(), handler.DeleteCourse)
}
