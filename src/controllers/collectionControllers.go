package controllers

import (
	"io"
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	service *services.CollectionService
}

func NewCollectionController(service *services.CollectionService) *CollectionController {
	return &CollectionController{service: service}
}

// collectionResponse expose le nombre d'oeuvres à côté des champs de la collection.
type collectionResponse struct {
	models.CollectionModel
	NombreOeuvres int `json:"nombreOeuvres"`
}

func toCollectionResponse(collection models.CollectionModel) collectionResponse {
	return collectionResponse{CollectionModel: collection, NombreOeuvres: len(collection.Oeuvres)}
}

func toCollectionResponses(collections []models.CollectionModel) []collectionResponse {
	responses := make([]collectionResponse, 0, len(collections))
	for _, collection := range collections {
		responses = append(responses, toCollectionResponse(collection))
	}
	return responses
}

// CreateCollection handles POST requests to create a collection with an optional cover image
func (c *CollectionController) CreateCollection(ctx *gin.Context) {
	var dto dtos.CreateCollectionDto
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

	collection, err := c.service.CreateCollection(ctx.Request.Context(), &dto, reader)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toCollectionResponse(*collection))
}

// GetAllCollections handles GET requests to list every collection
func (c *CollectionController) GetAllCollections(ctx *gin.Context) {
	collections, err := c.service.GetAllCollections()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCollectionResponses(collections))
}

// GetCollectionsPermanentes handles GET requests to list the permanent collections
func (c *CollectionController) GetCollectionsPermanentes(ctx *gin.Context) {
	collections, err := c.service.GetCollectionsPermanentes()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCollectionResponses(collections))
}

// GetCollectionByID handles GET requests to retrieve a collection with its artworks
func (c *CollectionController) GetCollectionByID(ctx *gin.Context) {
	collection, err := c.service.GetCollectionByID(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCollectionResponse(*collection))
}

// UpdateCollection handles PATCH requests to partially update a collection
func (c *CollectionController) UpdateCollection(ctx *gin.Context) {
	var dto dtos.UpdateCollectionDto
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

	collection, err := c.service.UpdateCollection(ctx.Request.Context(), ctx.Param("id"), &dto, reader)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCollectionResponse(*collection))
}

// DeleteCollection handles DELETE requests to remove a collection, detaching its artworks
func (c *CollectionController) DeleteCollection(ctx *gin.Context) {
	if err := c.service.DeleteCollection(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Collection supprimée"})
}

// AddOeuvre handles POST requests to attach an artwork to a collection
func (c *CollectionController) AddOeuvre(ctx *gin.Context) {
	if err := c.service.AddOeuvre(ctx.Param("id"), ctx.Param("oeuvreId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Œuvre ajoutée à la collection"})
}

// RemoveOeuvre handles DELETE requests to detach an artwork from a collection
func (c *CollectionController) RemoveOeuvre(ctx *gin.Context) {
	if err := c.service.RemoveOeuvre(ctx.Param("id"), ctx.Param("oeuvreId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Œuvre retirée de la collection"})
}
