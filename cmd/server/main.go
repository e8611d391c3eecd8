package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/habit-tracker-api/internal/config"
	"github.com/yukikurage/habit-tracker-api/internal/constants"
	"github.com/yukikurage/habit-tracker-api/internal/database"
	"github.com/yukikurage/habit-tracker-api/internal/handlers"
	"github.com/yukikurage/habit-tracker-api/internal/middleware"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
	"github.com/yukikurage/habit-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Printf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	schedulerRepo := repository.NewSchedulerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	doneTaskRepo := repository.NewDoneTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	schedulerService := services.NewSchedulerService(schedulerRepo)
	taskService := services.NewTaskService(taskRepo, categoryRepo, schedulerRepo)
	doneTaskService := services.NewDoneTaskService(doneTaskRepo, taskRepo)
	reportService := services.NewReportService(taskRepo, doneTaskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	schedulerHandler := handlers.NewSchedulerHandler(schedulerService)
	taskHandler := handlers.NewTaskHandler(taskService)
	doneTaskHandler := handlers.NewDoneTaskHandler(doneTaskService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Habit Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(middleware.RequireAuth())
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Scheduler routes (protected)
		schedulers := api.Group("/schedulers")
		schedulers.Use(middleware.RequireAuth())
		{
			schedulers.GET("", schedulerHandler.ListSchedulers)
			schedulers.POST("", schedulerHandler.CreateScheduler)
			schedulers.GET("/:id", schedulerHandler.GetScheduler)
			schedulers.PUT("/:id", schedulerHandler.UpdateScheduler)
			schedulers.DELETE("/:id", schedulerHandler.DeleteScheduler)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Done-task routes (protected)
		doneTasks := api.Group("/done-tasks")
		doneTasks.Use(middleware.RequireAuth())
		{
			doneTasks.POST("", doneTaskHandler.CreateDoneTask)
			doneTasks.GET("/scheduled", doneTaskHandler.ListScheduled)
			doneTasks.GET("/:id", doneTaskHandler.GetDoneTask)
			doneTasks.PATCH("/:id", doneTaskHandler.UpdateDoneTask)
		}

		// Report routes (protected)
		reports := api.Group("/reports")
		reports.Use(middleware.RequireAuth())
		{
			reports.GET("", reportHandler.BaseReport)
			reports.GET("/percentage-completed", reportHandler.PercentageReport)
			reports.GET("/quantitative-data", reportHandler.QuantityReport)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
