package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type EvenementController struct {
	service *services.EvenementService
}

func NewEvenementController(service *services.EvenementService) *EvenementController {
	return &EvenementController{service: service}
}

// openFormFile ouvre le fichier multipart nommé, ou renvoie nil s'il est absent.
func openFormFile(ctx *gin.Context, name string) (io.ReadCloser, error) {
	fileHeader, err := ctx.FormFile(name)
	if err != nil {
		return nil, nil
	}
	return fileHeader.Open()
}

// CreateEvenement handles POST requests to create a new event with its poster image
func (c *EvenementController) CreateEvenement(ctx *gin.Context) {
	var dto dtos.CreateEvenementDto
	if err := ctx.ShouldBind(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := openFormFile(ctx, "image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	evenement, err := c.service.CreateEvenement(ctx.Request.Context(), &dto, reader)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, evenement)
}

// GetAllEvenements handles GET requests to list events with filters and pagination
func (c *EvenementController) GetAllEvenements(ctx *gin.Context) {
	var filters dtos.FilterEvenementDto
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evenements, meta, err := c.service.GetAllEvenements(&filters)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": evenements, "meta": meta})
}

// GetStatistiques handles GET requests for aggregate event counters
func (c *EvenementController) GetStatistiques(ctx *gin.Context) {
	stats, err := c.service.GetStatistiques()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetEvenementByID handles GET requests to retrieve an event by its ID
func (c *EvenementController) GetEvenementByID(ctx *gin.Context) {
	evenement, err := c.service.GetEvenementByID(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evenement)
}

// UpdateEvenement handles PATCH requests to partially update an event
func (c *EvenementController) UpdateEvenement(ctx *gin.Context) {
	var dto dtos.UpdateEvenementDto
	if err := ctx.ShouldBind(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := openFormFile(ctx, "image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	evenement, err := c.service.UpdateEvenement(ctx.Request.Context(), ctx.Param("id"), &dto, reader)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evenement)
}

// DeleteEvenement handles DELETE requests to remove an event and its registrations
func (c *EvenementController) DeleteEvenement(ctx *gin.Context) {
	if err := c.service.DeleteEvenement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Évènement supprimé"})
}

// Inscrire handles POST requests to register the authenticated user to an event
func (c *EvenementController) Inscrire(ctx *gin.Context) {
	utilisateurId := ctx.GetString("userId")
	if utilisateurId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var dto dtos.CreateInscriptionDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inscription, err := c.service.Inscrire(utilisateurId, &dto)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, inscription)
}

// Desinscrire handles DELETE requests to withdraw a user from an event
func (c *EvenementController) Desinscrire(ctx *gin.Context) {
	evenementId := ctx.Param("id")
	utilisateurId := ctx.Param("utilisateurId")

	if err := c.service.Desinscrire(utilisateurId, evenementId); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Désinscription effectuée"})
}

// GetInscriptions handles GET requests to list the registrations of an event
func (c *EvenementController) GetInscriptions(ctx *gin.Context) {
	inscriptions, err := c.service.GetInscriptions(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, inscriptions)
}

// GetMesInscriptions handles GET requests to list the authenticated user's registrations
func (c *EvenementController) GetMesInscriptions(ctx *gin.Context) {
	utilisateurId := ctx.GetString("userId")
	if utilisateurId == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	inscriptions, err := c.service.GetMesInscriptions(utilisateurId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, inscriptions)
}

// ExportInscriptions handles GET requests to download an event's registrations as an Excel file
func (c *EvenementController) ExportInscriptions(ctx *gin.Context) {
	file, err := c.service.ExportInscriptions(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	filename := fmt.Sprintf("inscriptions-%s.xlsx", ctx.Param("id"))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := file.Write(ctx.Writer); err != nil {
		handleServiceError(ctx, err)
	}
}
