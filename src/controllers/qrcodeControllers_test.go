package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQrCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/qrcode", NewQrCodeController().GenerateQrCode)

	t.Run("retourne un PNG", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/qrcode", strings.NewReader(`{"qrCodeString":"MCN-001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "qrcode.png")
		// Signature PNG
		body := w.Body.Bytes()
		require.Greater(t, len(body), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
	})

	t.Run("champ manquant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/qrcode", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
