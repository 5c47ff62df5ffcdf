package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"learnhub/config"
	"learnhub/database"
	_ "learnhub/docs"
	courseRoutes "learnhub/routers/courseRoutes"
	quizRoutes "learnhub/routers/quizRoutes"
)

// @title       LearnHub API
// @version     1.0
// @description REST API for courses and their quizzes.
// @BasePath    /api
func main() {
	config.LoadConfig()

	store, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Fallback for anything no handler caught: log it and answer with a
		// plain-text 500.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			log.Printf("Unhandled error: %v", err)
			return c.Status(code).SendString("Something broke!")
		},
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the LearnHub API")
	})
	app.Get("/api-docs/*", swagger.HandlerDefault)

	courseRoutes.SetupCourseRoutes(app, store)
	quizRoutes.SetupQuizRoutes(app, store)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	if err := store.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
