package routes

import (
	"studentportal/backend/config"
	"studentportal/backend/controllers"
	"studentportal/backend/sheets"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, src sheets.Source, cfg *config.Config) {
	studentController := controllers.NewStudentController(src, cfg)

	app.Get("/api/health", studentController.Health)
	app.Get("/api/student/:admissionNo", studentController.GetStudentProfile)
}
