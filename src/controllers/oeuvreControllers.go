package controllers

import (
	"io"
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type OeuvreController struct {
	service            *services.OeuvreService
	utilisateurService *services.UtilisateurService
}

func NewOeuvreController(service *services.OeuvreService, utilisateurService *services.UtilisateurService) *OeuvreController {
	return &OeuvreController{service: service, utilisateurService: utilisateurService}
}

// collectMediaFiles ouvre tous les fichiers multipart "medias" de la requête.
func collectMediaFiles(ctx *gin.Context) ([]services.MediaFile, []io.Closer, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil, nil
	}

	var medias []services.MediaFile
	var closers []io.Closer
	for _, fileHeader := range form.File["medias"] {
		file, err := fileHeader.Open()
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, err
		}
		closers = append(closers, file)
		medias = append(medias, services.MediaFile{
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        file,
		})
	}
	return medias, closers, nil
}

// CreateOeuvre handles POST requests to create an artwork with its image and optional media files
func (c *OeuvreController) CreateOeuvre(ctx *gin.Context) {
	var dto dtos.CreateOeuvreDto
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

	medias, closers, err := collectMediaFiles(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		for _, closer := range closers {
			closer.Close()
		}
	}()

	oeuvre, err := c.service.CreateOeuvre(ctx.Request.Context(), &dto, reader, medias)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, oeuvre)
}

// GetAllOeuvres handles GET requests to list artworks, with descriptions in the requested language
func (c *OeuvreController) GetAllOeuvres(ctx *gin.Context) {
	langue := ctx.Query("langue")

	oeuvres, err := c.service.GetAllOeuvres(langue)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, oeuvres)
}

// GetOeuvreByID handles GET requests to retrieve an artwork by its ID
func (c *OeuvreController) GetOeuvreByID(ctx *gin.Context) {
	oeuvre, err := c.service.GetOeuvreByID(ctx.Param("id"), ctx.Query("langue"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, oeuvre)
}

// GetOeuvreByQrCode handles GET requests to resolve an artwork from a scanned QR code
func (c *OeuvreController) GetOeuvreByQrCode(ctx *gin.Context) {
	oeuvre, err := c.service.GetOeuvreByQrCode(ctx.Param("qrCode"), ctx.Query("langue"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	// Si le visiteur est authentifié, le scan alimente son historique.
	if utilisateurId := ctx.GetString("userId"); utilisateurId != "" {
		if err := c.utilisateurService.RecordConsultation(utilisateurId, oeuvre.Id); err != nil {
			handleServiceError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, oeuvre)
}

// UpdateOeuvre handles PATCH requests to partially update an artwork
func (c *OeuvreController) UpdateOeuvre(ctx *gin.Context) {
	var dto dtos.UpdateOeuvreDto
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

	medias, closers, err := collectMediaFiles(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		for _, closer := range closers {
			closer.Close()
		}
	}()

	oeuvre, err := c.service.UpdateOeuvre(ctx.Request.Context(), ctx.Param("id"), &dto, reader, medias)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, oeuvre)
}

// DeleteOeuvre handles DELETE requests to remove an artwork and its attached records
func (c *OeuvreController) DeleteOeuvre(ctx *gin.Context) {
	if err := c.service.DeleteOeuvre(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Œuvre supprimée"})
}

// UpdateDescriptions handles PUT requests to replace the translations of an artwork
func (c *OeuvreController) UpdateDescriptions(ctx *gin.Context) {
	var dto dtos.UpdateDescriptionsDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oeuvre, err := c.service.UpdateDescriptions(ctx.Param("id"), dto.Descriptions)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, oeuvre)
}

// UpsertDescription handles PATCH requests to set a single translation of an artwork
func (c *OeuvreController) UpsertDescription(ctx *gin.Context) {
	var dto dtos.DescriptionInputDto
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := c.service.UpsertDescription(ctx.Param("id"), dto.Langue, dto.Texte)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, description)
}
