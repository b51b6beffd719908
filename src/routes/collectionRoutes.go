package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCollectionRoutes(router *gin.Engine, service *services.CollectionService) {

	collectionController := controllers.NewCollectionController(service)

	// Public routes
	public := router.Group("/collections")
	{
		public.GET("/", collectionController.GetAllCollections)
		public.GET("/permanentes", collectionController.GetCollectionsPermanentes)
		public.GET("/:id", collectionController.GetCollectionByID)
	}

	// Protected routes
	protected := router.Group("/collections")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/", collectionController.CreateCollection)
		protected.PATCH("/:id", collectionController.UpdateCollection)
		protected.DELETE("/:id", collectionController.DeleteCollection)
		protected.POST("/:id/oeuvres/:oeuvreId", collectionController.AddOeuvre)
		protected.DELETE("/:id/oeuvres/:oeuvreId", collectionController.RemoveOeuvre)
	}
}
