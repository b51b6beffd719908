package controllers

import (
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UtilisateurController struct {
	service *services.UtilisateurService
}

func NewUtilisateurController(service *services.UtilisateurService) *UtilisateurController {
	return &UtilisateurController{service: service}
}

// Register handles POST requests to create an account and returns a signed token
func (c *UtilisateurController) Register(ctx *gin.Context) {
	var dto dtos.CreateUtilisateurDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	utilisateur, token, err := c.service.CreateUtilisateur(&dto)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"utilisateur": utilisateur, "access_token": token})
}

// Login handles POST requests to authenticate a user by email and password
func (c *UtilisateurController) Login(ctx *gin.Context) {
	var dto dtos.LoginUtilisateurDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	utilisateur, token, err := c.service.AuthenticateUtilisateur(&dto)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"utilisateur": utilisateur, "access_token": token})
}

// GetAllUtilisateurs handles GET requests to list every account
func (c *UtilisateurController) GetAllUtilisateurs(ctx *gin.Context) {
	utilisateurs, err := c.service.GetAllUtilisateurs()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utilisateurs)
}

// GetUtilisateurByID handles GET requests to retrieve a user with favorites and recent history
func (c *UtilisateurController) GetUtilisateurByID(ctx *gin.Context) {
	utilisateur, err := c.service.GetUtilisateurByID(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utilisateur)
}

// UpdateUtilisateur handles PATCH requests to partially update an account
func (c *UtilisateurController) UpdateUtilisateur(ctx *gin.Context) {
	var dto dtos.UpdateUtilisateurDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	utilisateur, err := c.service.UpdateUtilisateur(ctx.Param("id"), &dto)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, utilisateur)
}

// DeleteUtilisateur handles DELETE requests to remove an account
func (c *UtilisateurController) DeleteUtilisateur(ctx *gin.Context) {
	if err := c.service.DeleteUtilisateur(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé"})
}

// GetFavoris handles GET requests to list a user's favorites
func (c *UtilisateurController) GetFavoris(ctx *gin.Context) {
	favoris, err := c.service.GetFavoris(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, favoris)
}

// GetHistorique handles GET requests to list a user's consultation history
func (c *UtilisateurController) GetHistorique(ctx *gin.Context) {
	historique, err := c.service.GetHistorique(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, historique)
}

// ClearHistorique handles DELETE requests to wipe a user's consultation history
func (c *UtilisateurController) ClearHistorique(ctx *gin.Context) {
	if err := c.service.ClearHistorique(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Historique vidé"})
}
