package controllers

import (
	"log"
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type QrCodeController struct{}

func NewQrCodeController() *QrCodeController {
	return &QrCodeController{}
}

// GenerateQrCode handles POST requests to render a QR code string as a PNG image
func (c *QrCodeController) GenerateQrCode(ctx *gin.Context) {
	var dto dtos.GenerateQrCodeDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, err := qrcode.Encode(dto.QrCodeString, qrcode.Medium, 300)
	if err != nil {
		log.Printf("erreur interne: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du serveur"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="qrcode.png"`)
	ctx.Data(http.StatusOK, "image/png", png)
}
