package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "mediticket/internal/interfaces/http/handlers/user"
	"mediticket/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	staff := config.AuthMiddleware.RequireStaff()

	users := engine.Group("/gebruikers")
	{
		// Registration is the only open user route.
		users.POST("/nieuw", config.UserHandler.Register)

		users.GET("/", staff, config.UserHandler.List)
		users.GET("/:id", staff, config.UserHandler.Get)
		users.PUT("/:id", staff, config.UserHandler.Update)
		users.DELETE("/:id", staff, config.UserHandler.Delete)
	}
}
