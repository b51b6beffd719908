package services

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/MCN-Plateforme/MCN-Backend/src/utils"
	"gorm.io/gorm"
)

type CollectionService struct {
	db      *gorm.DB
	storage utils.FileStorage
}

// NewCollectionService creates a new instance of CollectionService
func NewCollectionService(db *gorm.DB, storage utils.FileStorage) *CollectionService {
	return &CollectionService{db: db, storage: storage}
}

// CreateCollection crée la collection, avec image optionnelle.
func (s *CollectionService) CreateCollection(ctx context.Context, dto *dtos.CreateCollectionDto, image io.Reader) (*models.CollectionModel, error) {
	collection := models.CollectionModel{
		Nom:           dto.Nom,
		Description:   dto.Description,
		Theme:         dto.Theme,
		EstPermanente: true,
	}
	if dto.EstPermanente != nil {
		collection.EstPermanente = *dto.EstPermanente
	}

	if image != nil {
		upload, err := s.storage.UploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		collection.ImageUrl = &upload.Url
	}

	if err := s.db.Create(&collection).Error; err != nil {
		return nil, err
	}

	return &collection, nil
}

// GetAllCollections liste les collections avec leurs oeuvres, plus
// récentes d'abord.
func (s *CollectionService) GetAllCollections() ([]models.CollectionModel, error) {
	var collections []models.CollectionModel
	err := s.db.
		Preload("Oeuvres").
		Order("created_at DESC").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollectionsPermanentes liste les collections permanentes.
func (s *CollectionService) GetCollectionsPermanentes() ([]models.CollectionModel, error) {
	var collections []models.CollectionModel
	err := s.db.
		Where("est_permanente = ?", true).
		Preload("Oeuvres").
		Order("created_at DESC").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollectionByID retrieves a Collection with its oeuvres fully loaded
func (s *CollectionService) GetCollectionByID(id string) (*models.CollectionModel, error) {
	var collection models.CollectionModel
	err := s.db.
		Preload("Oeuvres").
		Preload("Oeuvres.Descriptions").
		Preload("Oeuvres.Medias").
		First(&collection, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return &collection, nil
}

// UpdateCollection met à jour les champs fournis. Une nouvelle image
// remplace l'ancienne, supprimée du stockage au mieux.
func (s *CollectionService) UpdateCollection(ctx context.Context, id string, dto *dtos.UpdateCollectionDto, image io.Reader) (*models.CollectionModel, error) {
	var collection models.CollectionModel
	if err := s.db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}

	if image != nil {
		if collection.ImageUrl != nil && *collection.ImageUrl != "" {
			if publicId := utils.ExtractPublicIdFromUrl(*collection.ImageUrl); publicId != "" {
				if err := s.storage.DeleteFile(ctx, publicId, "image"); err != nil {
					log.Printf("could not delete old collection image %s: %v", publicId, err)
				}
			}
		}

		upload, err := s.storage.UploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updates["image_url"] = upload.Url
	}

	if dto.Nom != nil {
		updates["nom"] = *dto.Nom
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Theme != nil {
		updates["theme"] = *dto.Theme
	}
	if dto.EstPermanente != nil {
		updates["est_permanente"] = *dto.EstPermanente
	}

	if len(updates) > 0 {
		if err := s.db.Model(&collection).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("Oeuvres").First(&collection, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &collection, nil
}

// DeleteCollection supprime la collection et son image stockée. Les oeuvres
// membres sont détachées (collection_id remis à NULL), jamais supprimées.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	var collection models.CollectionModel
	if err := s.db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}

	if collection.ImageUrl != nil && *collection.ImageUrl != "" {
		if publicId := utils.ExtractPublicIdFromUrl(*collection.ImageUrl); publicId != "" {
			if err := s.storage.DeleteFile(ctx, publicId, "image"); err != nil {
				log.Printf("could not delete collection image %s: %v", publicId, err)
			}
		}
	}

	return s.db.Delete(&models.CollectionModel{}, "id = ?", id).Error
}

// AddOeuvre rattache une oeuvre existante à la collection.
func (s *CollectionService) AddOeuvre(collectionId string, oeuvreId string) error {
	var collection models.CollectionModel
	if err := s.db.First(&collection, "id = ?", collectionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}

	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", oeuvreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOeuvreNotFound
		}
		return err
	}

	return s.db.Model(&models.OeuvreModel{}).
		Where("id = ?", oeuvreId).
		Update("collection_id", collectionId).Error
}

// RemoveOeuvre détache une oeuvre de la collection (collection_id → NULL).
func (s *CollectionService) RemoveOeuvre(collectionId string, oeuvreId string) error {
	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", oeuvreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOeuvreNotFound
		}
		return err
	}

	if oeuvre.CollectionId == nil || *oeuvre.CollectionId != collectionId {
		return ErrOeuvreHorsCollection
	}

	return s.db.Model(&models.OeuvreModel{}).
		Where("id = ?", oeuvreId).
		Update("collection_id", nil).Error
}
