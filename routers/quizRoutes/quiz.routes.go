package quizRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnhub/controllers/quiz"
	"learnhub/database"
	validators "learnhub/validators/quiz"
)

// SetupQuizRoutes sets up the nested quiz routes and the flat quiz routes
func SetupQuizRoutes(app *fiber.App, store *database.Store) {
	handler := controllers.NewQuizHandler(store)

	// Creation and listing live under the owning course.
	nested := app.Group("/api/courses/:courseId/quizzes")
	nested.Post("/", validators.CreateQuiz(), handler.CreateQuiz)
	nested.Get("/", validators.CourseRef(), handler.ListQuizzes)

	// Everything after creation addresses the quiz by its own id.
	group := app.Group("/api/quizzes")
	group.Get("/:id", validators.QuizID(), handler.GetQuiz)
	group.Put("/:id", validators.UpdateQuiz(), handler.UpdateQuiz)
	group.Delete("/:id", validators.QuizID(), handler.DeleteQuiz)
}
