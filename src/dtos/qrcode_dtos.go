package dtos

type GenerateQrCodeDto struct {
	QrCodeString string `json:"qrCodeString" binding:"required"`
}
