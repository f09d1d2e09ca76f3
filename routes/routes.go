package routes

import (
	"github.com/190014uewroc/dAIet/controllers"
	"github.com/190014uewroc/dAIet/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public catalog
	catalog := r.Group("/catalog")
	{
		catalog.GET("/meals", controllers.ListMeals)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Protected planner routes
	planner := r.Group("/planner")
	planner.Use(middlewares.AuthMiddleware())
	{
		planner.POST("/plan", controllers.CreatePlan)
		planner.GET("/history", controllers.GetPlanHistory)
		planner.POST("/email", controllers.EmailPlan)
	}

	return r
}
