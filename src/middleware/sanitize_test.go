package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInputMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SanitizeInputMiddleware())
	router.POST("/echo", func(ctx *gin.Context) {
		var body map[string]interface{}
		require.NoError(t, ctx.ShouldBindJSON(&body))
		ctx.JSON(http.StatusOK, body)
	})

	t.Run("neutralise le HTML des champs texte", func(t *testing.T) {
		payload := `{"nom":"<script>alert(1)</script>Awa","age":30}`
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Awa", body["nom"])
		assert.Equal(t, float64(30), body["age"])
	})

	t.Run("JSON malforme rejete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"nom":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
