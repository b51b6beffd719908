package routes

import (
	"github.com/MCN-Plateforme/MCN-Backend/src/controllers"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/gin-gonic/gin"
)

func SetupQrCodeRoutes(router *gin.Engine) {

	qrCodeController := controllers.NewQrCodeController()

	// Protected routes
	qrcode := router.Group("/qrcode")
	qrcode.Use(middleware.AuthMiddleware())
	{
		qrcode.POST("/generate", qrCodeController.GenerateQrCode)
	}
}
