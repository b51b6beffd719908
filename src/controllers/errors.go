package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/MCN-Plateforme/MCN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// handleServiceError traduit les erreurs métier en réponses HTTP.
// Toute erreur inconnue est journalisée et masquée au client.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrImageRequise),
		errors.Is(err, services.ErrDateInvalide),
		errors.Is(err, services.ErrDescriptionsInvalides),
		errors.Is(err, services.ErrCapaciteAtteinte),
		errors.Is(err, services.ErrDejaInscrit),
		errors.Is(err, services.ErrFavoriDejaPresent),
		errors.Is(err, services.ErrOeuvreHorsCollection):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEvenementNotFound),
		errors.Is(err, services.ErrOeuvreNotFound),
		errors.Is(err, services.ErrCollectionNotFound),
		errors.Is(err, services.ErrInscriptionNotFound),
		errors.Is(err, services.ErrFavoriNotFound),
		errors.Is(err, services.ErrUtilisateurNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailDejaUtilise):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIdentifiantsInvalides):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("erreur interne: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du serveur"})
	}
}
