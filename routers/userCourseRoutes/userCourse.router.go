package userCourseRoutes

import (
	controllers "stage/controllers/enrollment"
	validators "stage/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupUserCourseRoutes wires the enrollment endpoints.
func SetupUserCourseRoutes(app *fiber.App) {
	group := app.Group("/api/user-courses")

	group.Get("/", validators.ListParams(), controllers.GetAllEnrollments)
	group.Post("/", validators.CreateEnrollment(), controllers.CreateEnrollment)

	group.Get("/:userId", validators.UserPath(), validators.ListParams(), controllers.GetUserEnrollments)
	group.Get("/:userId/:courseId", validators.UserCoursePath(), controllers.GetEnrollment)
	group.Put("/:userId/:courseId", validators.UserCoursePath(), validators.UpdateEnrollment(), controllers.UpdateEnrollment)
	group.Delete("/:userId/:courseId", validators.UserCoursePath(), controllers.DeleteEnrollment)
}
