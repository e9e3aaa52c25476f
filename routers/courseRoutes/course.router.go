package courseRoutes

import (
	controllers "stage/controllers/course"
	validators "stage/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the course catalog endpoints.
func SetupCourseRoutes(app *fiber.App) {
	group := app.Group("/api/courses")

	group.Get("/", validators.ListCourses(), controllers.GetAllCourses)
	group.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	group.Get("/:courseId", validators.CoursePath("courseId"), controllers.GetCourseByID)
	group.Put("/:id", validators.CoursePath("id"), validators.UpdateCourse(), controllers.UpdateCourse)
	group.Delete("/:id", validators.CoursePath("id"), controllers.DeleteCourse)

	// Mentor-scoped catalog listing.
	mentorGroup := app.Group("/api/mentor-courses")
	mentorGroup.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	mentorGroup.Get("/:mentorId", validators.MentorPath(), validators.ListCourses(), controllers.GetMentorCourses)
}
