package mentorRoutes

import (
	controllers "stage/controllers/mentor"
	validators "stage/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

// SetupMentorRoutes wires the mentor CRUD endpoints.
func SetupMentorRoutes(app *fiber.App) {
	group := app.Group("/api/mentors")

	group.Get("/", controllers.GetAllMentors)
	group.Post("/", validators.CreateMentor(), controllers.CreateMentor)
	group.Get("/:id", validators.MentorPath(), controllers.GetMentorByID)
	group.Put("/:id", validators.MentorPath(), validators.UpdateMentor(), controllers.UpdateMentor)
	group.Delete("/:id", validators.MentorPath(), controllers.DeleteMentor)
}
