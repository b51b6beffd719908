package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupEvenementRoutes(router *gin.Engine, service *services.EvenementService) {

	evenementController := controllers.NewEvenementController(service)

	// Public routes
	public := router.Group("/evenements")
	{
		public.GET("/", evenementController.GetAllEvenements)
		public.GET("/statistiques", evenementController.GetStatistiques)
		public.GET("/:id", evenementController.GetEvenementByID)
	}

	// Protected routes
	protected := router.Group("/evenements")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/", evenementController.CreateEvenement)
		protected.PATCH("/:id", evenementController.UpdateEvenement)
		protected.DELETE("/:id", evenementController.DeleteEvenement)

		protected.POST("/inscription", evenementController.Inscrire)
		protected.DELETE("/:id/inscription/:utilisateurId", evenementController.Desinscrire)
		protected.GET("/:id/inscriptions", evenementController.GetInscriptions)
		protected.GET("/:id/inscriptions/export", evenementController.ExportInscriptions)
		protected.GET("/user/mes-inscriptions", evenementController.GetMesInscriptions)
	}
}
