package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFavoriRoutes(router *gin.Engine, service *services.FavoriService) {

	favoriController := controllers.NewFavoriController(service)

	// Protected routes
	favori := router.Group("/favori")
	favori.Use(middleware.AuthMiddleware())
	{
		favori.POST("/", favoriController.ToggleFavori)
		favori.POST("/ajouter", favoriController.AddFavori)
		favori.GET("/", favoriController.GetAllFavoris)
		favori.GET("/user/me", favoriController.GetMesFavoris)
		favori.GET("/:id", favoriController.GetFavoriByID)
		favori.PATCH("/:id", favoriController.UpdateFavori)
		favori.DELETE("/:id", favoriController.DeleteFavori)
	}
}
