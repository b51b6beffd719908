package services

import (
	"errors"

	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// La sémantique de bascule distingue explicitement les deux issues.
const (
	FavoriAjoute = "ajoute"
	FavoriRetire = "retire"
)

// ToggleResult décrit l'issue d'une bascule de favori. Favori n'est
// renseigné que lorsqu'un favori vient d'être créé.
type ToggleResult struct {
	Action string              `json:"action"`
	Favori *models.FavoriModel `json:"favori,omitempty"`
}

type FavoriService struct {
	db *gorm.DB
}

// NewFavoriService creates a new instance of FavoriService
func NewFavoriService(db *gorm.DB) *FavoriService {
	return &FavoriService{db: db}
}

// ToggleFavori crée le favori s'il est absent, le supprime s'il est présent.
// Recherche et écriture s'exécutent dans une même transaction pour éviter
// qu'une double bascule concurrente n'insère deux lignes.
func (s *FavoriService) ToggleFavori(utilisateurId string, oeuvreId string) (*ToggleResult, error) {
	result := &ToggleResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var favori models.FavoriModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("utilisateur_id = ? AND oeuvre_id = ?", utilisateurId, oeuvreId).
			First(&favori).Error

		if err == nil {
			result.Action = FavoriRetire
			return tx.Delete(&models.FavoriModel{}, "id = ?", favori.Id).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favori = models.FavoriModel{
			UtilisateurId: utilisateurId,
			OeuvreId:      oeuvreId,
		}
		if err := tx.Create(&favori).Error; err != nil {
			return err
		}

		result.Action = FavoriAjoute
		result.Favori = &favori
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AddFavori insère strictement un favori, sans sémantique de bascule.
func (s *FavoriService) AddFavori(utilisateurId string, oeuvreId string) (*models.FavoriModel, error) {
	var favori models.FavoriModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.FavoriModel
		err := tx.
			Where("utilisateur_id = ? AND oeuvre_id = ?", utilisateurId, oeuvreId).
			First(&existing).Error
		if err == nil {
			return ErrFavoriDejaPresent
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favori = models.FavoriModel{
			UtilisateurId: utilisateurId,
			OeuvreId:      oeuvreId,
		}
		return tx.Create(&favori).Error
	})
	if err != nil {
		return nil, err
	}

	return &favori, nil
}

// GetAllFavoris retrieves all Favori records from the database
func (s *FavoriService) GetAllFavoris() ([]models.FavoriModel, error) {
	var favoris []models.FavoriModel
	result := s.db.Find(&favoris)
	if result.Error != nil {
		return nil, result.Error
	}
	return favoris, nil
}

// GetFavoriByID retrieves a Favori record by its ID
func (s *FavoriService) GetFavoriByID(id string) (*models.FavoriModel, error) {
	var favori models.FavoriModel
	if err := s.db.First(&favori, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriNotFound
		}
		return nil, err
	}
	return &favori, nil
}

// GetFavorisByUtilisateur liste les favoris d'un utilisateur avec l'oeuvre jointe.
func (s *FavoriService) GetFavorisByUtilisateur(utilisateurId string) ([]models.FavoriModel, error) {
	var favoris []models.FavoriModel
	err := s.db.
		Where("utilisateur_id = ?", utilisateurId).
		Preload("Oeuvre").
		Find(&favoris).Error
	if err != nil {
		return nil, err
	}
	return favoris, nil
}

// UpdateFavori remplace les champs fournis d'un favori existant.
func (s *FavoriService) UpdateFavori(id string, utilisateurId *string, oeuvreId *string) (*models.FavoriModel, error) {
	var favori models.FavoriModel
	if err := s.db.First(&favori, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if utilisateurId != nil {
		updates["utilisateur_id"] = *utilisateurId
	}
	if oeuvreId != nil {
		updates["oeuvre_id"] = *oeuvreId
	}

	if len(updates) > 0 {
		if err := s.db.Model(&favori).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &favori, nil
}

// DeleteFavori deletes a Favori record by its ID
func (s *FavoriService) DeleteFavori(id string) error {
	var favori models.FavoriModel
	if err := s.db.First(&favori, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriNotFound
		}
		return err
	}

	return s.db.Delete(&models.FavoriModel{}, "id = ?", id).Error
}
