package routes

import (
	"servitec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsers = "/users"

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
	}
}
