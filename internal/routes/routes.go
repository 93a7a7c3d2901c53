package routes

import (
	"workhub-api/internal/handlers"
	"workhub-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "WorkHub API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.Register)
		api.POST("/auth/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// User endpoints
		protectedRoutes.GET("/users", handlers.GetAllUsers)
		protectedRoutes.GET("/users/me", handlers.GetCurrentUser)
		protectedRoutes.PUT("/users/me", handlers.UpdateCurrentUser)
		protectedRoutes.DELETE("/users/me", handlers.DeleteCurrentUser)
		protectedRoutes.GET("/users/:id", handlers.GetUserByID)

		// Project endpoints
		protectedRoutes.GET("/projects", handlers.GetUserProjects)
		protectedRoutes.POST("/projects", handlers.CreateProject)
		protectedRoutes.GET("/projects/:projectId", handlers.GetProject)
		protectedRoutes.PUT("/projects/:projectId", handlers.UpdateProject)
		protectedRoutes.PATCH("/projects/:projectId/status", handlers.UpdateProjectStatus)
		protectedRoutes.DELETE("/projects/:projectId", handlers.DeleteProject)

		// Project member endpoints
		protectedRoutes.GET("/projects/:projectId/members", handlers.ListMembers)
		protectedRoutes.POST("/projects/:projectId/members", handlers.UpsertConnection)
		protectedRoutes.DELETE("/projects/:projectId/members/:email", handlers.RemoveMember)
		protectedRoutes.GET("/projects/:projectId/members/:userId/role", handlers.GetMemberRole)

		// Task endpoints
		protectedRoutes.GET("/projects/:projectId/tasks", handlers.GetTasks)
		protectedRoutes.POST("/projects/:projectId/tasks", handlers.CreateTask)
		protectedRoutes.GET("/projects/:projectId/tasks/:taskId", handlers.GetTaskByID)
		protectedRoutes.PUT("/projects/:projectId/tasks/:taskId", handlers.UpdateTask)
		protectedRoutes.PATCH("/projects/:projectId/tasks/:taskId/status", handlers.UpdateTaskStatus)
		protectedRoutes.PATCH("/projects/:projectId/tasks/:taskId/priority", handlers.UpdateTaskPriority)
		protectedRoutes.PATCH("/projects/:projectId/tasks/:taskId/assignee", handlers.UpdateTaskAssignee)

		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
