package controllers

import (
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FavoriController struct {
	service *services.FavoriService
}

func NewFavoriController(service *services.FavoriService) *FavoriController {
	return &FavoriController{service: service}
}

// ToggleFavori handles POST requests to add or remove an artwork from the user's favorites
func (c *FavoriController) ToggleFavori(ctx *gin.Context) {
	utilisateurId := ctx.GetString("userId")
	if utilisateurId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var dto dtos.CreateFavoriDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.ToggleFavori(utilisateurId, dto.OeuvreId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AddFavori handles POST requests that strictly add a favorite, failing if it already exists
func (c *FavoriController) AddFavori(ctx *gin.Context) {
	utilisateurId := ctx.GetString("userId")
	if utilisateurId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var dto dtos.CreateFavoriDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favori, err := c.service.AddFavori(utilisateurId, dto.OeuvreId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, favori)
}

// GetAllFavoris handles GET requests to list every favorite record
func (c *FavoriController) GetAllFavoris(ctx *gin.Context) {
	favoris, err := c.service.GetAllFavoris()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, favoris)
}

// GetMesFavoris handles GET requests to list the authenticated user's favorites
func (c *FavoriController) GetMesFavoris(ctx *gin.Context) {
	utilisateurId := ctx.GetString("userId")
	if utilisateurId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	favoris, err := c.service.GetFavorisByUtilisateur(utilisateurId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, favoris)
}

// GetFavoriByID handles GET requests to retrieve a favorite by its ID
func (c *FavoriController) GetFavoriByID(ctx *gin.Context) {
	favori, err := c.service.GetFavoriByID(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, favori)
}

// UpdateFavori handles PATCH requests to reassign a favorite record
func (c *FavoriController) UpdateFavori(ctx *gin.Context) {
	var dto dtos.UpdateFavoriDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favori, err := c.service.UpdateFavori(ctx.Param("id"), dto.UtilisateurId, dto.OeuvreId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, favori)
}

// DeleteFavori handles DELETE requests to remove a favorite by its ID
func (c *FavoriController) DeleteFavori(ctx *gin.Context) {
	if err := c.service.DeleteFavori(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Favori supprimé"})
}
