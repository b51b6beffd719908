package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOeuvreRoutes(router *gin.Engine, service *services.OeuvreService, utilisateurService *services.UtilisateurService) {

	oeuvreController := controllers.NewOeuvreController(service, utilisateurService)

	// Public routes
	public := router.Group("/oeuvres")
	{
		public.GET("/", oeuvreController.GetAllOeuvres)
		public.GET("/:id", oeuvreController.GetOeuvreByID)
		// Le scan QR est public mais alimente l'historique des visiteurs connectés
		public.GET("/qrcode/:qrCode", middleware.OptionalAuthMiddleware(), oeuvreController.GetOeuvreByQrCode)
	}

	// Protected routes
	protected := router.Group("/oeuvres")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/", oeuvreController.CreateOeuvre)
		protected.PATCH("/:id", oeuvreController.UpdateOeuvre)
		protected.DELETE("/:id", oeuvreController.DeleteOeuvre)
		protected.PUT("/:id/descriptions", oeuvreController.UpdateDescriptions)
		protected.PATCH("/:id/descriptions", oeuvreController.UpsertDescription)
	}
}
