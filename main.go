// main.go - Entry point for the employee backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"employee-backend/config"     // Project config management
	"employee-backend/database"   // Database connection and setup
	"employee-backend/handlers"   // HTTP handlers for API endpoints
	"employee-backend/middleware" // Middleware (JWT authentication)
	"employee-backend/uploader"   // External image host client

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, JWT secret, image host)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}
	uploader.Init(cfg.ImageUploadURL, cfg.ImageAPIKey) // Configure the image host client

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	r.GET("/", func(c *gin.Context) { // Health check
		c.JSON(200, gin.H{"success": true, "message": "Your server is up and running...."})
	})

	api := r.Group("/api/v1") // All routes live under /api/v1

	// Public routes (no authentication required)
	api.POST("/login", handlers.Login)   // Public route: admin login
	api.POST("/signup", handlers.Signup) // Public route: admin registration

	// Protected routes (require a valid JWT)
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		auth.POST("/createEmployee", handlers.CreateEmployee)       // Protected: create employee
		auth.GET("/getAllEmployee", handlers.GetAllEmployee)        // Protected: list employees
		auth.GET("/getEmployeeById/:id", handlers.GetEmployeeByID)  // Protected: fetch one employee
		auth.POST("/editEmployee/:id", handlers.EditEmployee)       // Protected: update employee
		auth.DELETE("/deleteEmployee/:id", handlers.DeleteEmployee) // Protected: delete employee
	}

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
