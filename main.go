package main

import (
	"log"

	"stage/config"
	"stage/database"
	courseRoutes "stage/routers/courseRoutes"
	mentorRoutes "stage/routers/mentorRoutes"
	userCourseRoutes "stage/routers/userCourseRoutes"
	userRoutes "stage/routers/userRoutes"
	"stage/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Stage : The Course Manager Home")
	})
	app.Get("/api/test", func(c *fiber.Ctx) error {
		return c.SendString("Stage : The Course Manager API")
	})

	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	mentorRoutes.SetupMentorRoutes(app)
	userCourseRoutes.SetupUserCourseRoutes(app)

	utils.InitializeStatsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
