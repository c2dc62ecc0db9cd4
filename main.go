package main

import (
	"log"

	"eduserve/config"
	courseControllers "eduserve/controllers/course"
	enrollmentControllers "eduserve/controllers/enrollment"
	userControllers "eduserve/controllers/user"
	"eduserve/database"
	"eduserve/middleware"
	"eduserve/routers"
	"eduserve/services/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",      // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Education Server is running...")
	})

	auth := middleware.NewAuth(middleware.NewJWTVerifier(cfg.JWTKey))
	engine := enrollment.NewEngine(db)

	routers.SetupUserRoutes(app, userControllers.NewUserController(db))
	routers.SetupCourseRoutes(app, auth, courseControllers.NewCourseController(db))
	routers.SetupEnrollmentRoutes(app, auth, enrollmentControllers.NewEnrollmentController(engine))

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
