package main

import (
	"log"

	"reinvent/config"
	"reinvent/database"
	"reinvent/routers/adminRoutes"
	"reinvent/routers/authRoutes"
	"reinvent/routers/coachingRoutes"
	"reinvent/routers/communityRoutes"
	"reinvent/routers/courseRoutes"
	"reinvent/routers/enrollmentRoutes"
	"reinvent/routers/forumRoutes"
	"reinvent/routers/notificationRoutes"
	"reinvent/routers/prayerRoutes"
	"reinvent/routers/programRoutes"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitCheckout()
	utils.InitializeReminderScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	programRoutes.SetupProgramRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	prayerRoutes.SetupPrayerRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	coachingRoutes.SetupCoachingRoutes(app)
	forumRoutes.SetupForumRoutes(app)
	communityRoutes.SetupCommunityRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
