package main

import (
	"log"

	"lssctc/config"
	"lssctc/database"
	adminRoutes "lssctc/routers/adminRoutes"
	authRoutes "lssctc/routers/authRoutes"
	classRoutes "lssctc/routers/classRoutes"
	dashboardRoutes "lssctc/routers/dashboardRoutes"
	progressRoutes "lssctc/routers/progressRoutes"
	supportRoutes "lssctc/routers/supportRoutes"
	"lssctc/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
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

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	classRoutes.SetupClassRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.InitializeClassScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
