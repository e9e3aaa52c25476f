package userRoutes

import (
	controllers "stage/controllers/user"
	validators "stage/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the user mirror endpoints plus the identity-provider
// webhook.
func SetupUserRoutes(app *fiber.App) {
	group := app.Group("/api/users")

	group.Get("/", controllers.GetAllUsers)
	group.Post("/", validators.CreateUser(), controllers.CreateUser)
	group.Get("/username/:username", controllers.GetUserByUsername)
	group.Get("/:id", controllers.GetUserByID)
	group.Put("/:id", validators.UserPath(), validators.UpdateUser(), controllers.UpdateUser)
	group.Delete("/:id", validators.UserPath(), controllers.DeleteUser)
	group.Post("/:id/resync", validators.UserPath(), controllers.ResyncUser)

	app.Post("/api/webhooks/clerk", controllers.ClerkWebhook)
}
