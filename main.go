package main

import (
	"techgetafrica/config"
	"techgetafrica/database"
	adminRoutes "techgetafrica/routers/adminRoutes"
	authRoutes "techgetafrica/routers/authRoutes"
	courseRoutes "techgetafrica/routers/courseRoutes"
	mediaRoutes "techgetafrica/routers/mediaRoutes"
	notificationRoutes "techgetafrica/routers/notificationRoutes"
	paymentRoutes "techgetafrica/routers/paymentRoutes"
	userRoutes "techgetafrica/routers/userRoutes"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadConfig()
	utils.InitLogger()
	database.ConnectDb()

	if err := utils.InitStorage(); err != nil {
		logrus.Fatalf("failed to initialize storage: %v", err)
	}

	utils.StartSchedulers()

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadSizeMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Locally stored uploads are served from here; S3 objects carry their
	// own URLs
	app.Static("/uploads", config.AppConfig.LocalUploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupInstructorRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)

	logrus.Infof("Server is running on port %s", config.AppConfig.Port)
	logrus.Fatal(app.Listen(":" + config.AppConfig.Port))
}
