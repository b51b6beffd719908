package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUtilisateurRoutes(router *gin.Engine, service *services.UtilisateurService) {

	utilisateurController := controllers.NewUtilisateurController(service)

	// Public routes
	public := router.Group("/utilisateurs")
	{
		public.POST("/", utilisateurController.Register)
		public.POST("/login", utilisateurController.Login)
	}

	// Protected routes
	protected := router.Group("/utilisateurs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/", utilisateurController.GetAllUtilisateurs)
		protected.GET("/:id", utilisateurController.GetUtilisateurByID)
		protected.PATCH("/:id", utilisateurController.UpdateUtilisateur)
		protected.DELETE("/:id", utilisateurController.DeleteUtilisateur)
		protected.GET("/:id/favoris", utilisateurController.GetFavoris)
		protected.GET("/:id/historique", utilisateurController.GetHistorique)
		protected.DELETE("/:id/historique", utilisateurController.ClearHistorique)
	}
}
