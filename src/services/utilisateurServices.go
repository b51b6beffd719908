package services

import (
	"errors"
	"time"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UtilisateurService struct {
	db *gorm.DB
}

// NewUtilisateurService creates a new instance of UtilisateurService
func NewUtilisateurService(db *gorm.DB) *UtilisateurService {
	return &UtilisateurService{db: db}
}

func (s *UtilisateurService) generateToken(utilisateur *models.UtilisateurModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":   utilisateur.Id,
		"email": utilisateur.Email,
		"role":  utilisateur.Role,
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetSecretKey()))
}

// CreateUtilisateur enregistre un nouvel utilisateur et retourne son token.
// L'email doit être unique.
func (s *UtilisateurService) CreateUtilisateur(dto *dtos.CreateUtilisateurDto) (*models.UtilisateurModel, string, error) {
	var existing models.UtilisateurModel
	err := s.db.Where("email = ?", dto.Email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailDejaUtilise
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	utilisateur := models.UtilisateurModel{
		Nom:            dto.Nom,
		Email:          dto.Email,
		MotDePasse:     string(hashedPassword),
		LanguePreferee: models.LangueFR,
		Role:           models.RoleVisiteur,
	}
	if dto.LanguePreferee != "" {
		utilisateur.LanguePreferee = dto.LanguePreferee
	}

	if err := s.db.Create(&utilisateur).Error; err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(&utilisateur)
	if err != nil {
		return nil, "", err
	}

	return &utilisateur, token, nil
}

// AuthenticateUtilisateur checks user credentials and returns a JWT token if valid
func (s *UtilisateurService) AuthenticateUtilisateur(dto *dtos.LoginUtilisateurDto) (*models.UtilisateurModel, string, error) {
	var utilisateur models.UtilisateurModel
	err := s.db.Where("email = ?", dto.Email).First(&utilisateur).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrIdentifiantsInvalides
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(utilisateur.MotDePasse), []byte(dto.MotDePasse)); err != nil {
		return nil, "", ErrIdentifiantsInvalides
	}

	token, err := s.generateToken(&utilisateur)
	if err != nil {
		return nil, "", err
	}

	return &utilisateur, token, nil
}

// GetAllUtilisateurs retrieves all Utilisateur records from the database
func (s *UtilisateurService) GetAllUtilisateurs() ([]models.UtilisateurModel, error) {
	var utilisateurs []models.UtilisateurModel
	err := s.db.Order("created_at DESC").Find(&utilisateurs).Error
	if err != nil {
		return nil, err
	}
	return utilisateurs, nil
}

// GetUtilisateurByID charge l'utilisateur avec ses favoris et ses dix
// dernières consultations.
func (s *UtilisateurService) GetUtilisateurByID(id string) (*models.UtilisateurModel, error) {
	var utilisateur models.UtilisateurModel
	err := s.db.
		Preload("Favoris.Oeuvre").
		Preload("Historique", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_consultation DESC").Limit(10)
		}).
		Preload("Historique.Oeuvre").
		First(&utilisateur, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilisateurNotFound
		}
		return nil, err
	}

	return &utilisateur, nil
}

// UpdateUtilisateur met à jour les champs fournis. Un changement d'email
// revérifie l'unicité, un changement de mot de passe est re-haché.
func (s *UtilisateurService) UpdateUtilisateur(id string, dto *dtos.UpdateUtilisateurDto) (*models.UtilisateurModel, error) {
	var utilisateur models.UtilisateurModel
	if err := s.db.First(&utilisateur, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilisateurNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}

	if dto.Email != nil {
		var existing models.UtilisateurModel
		err := s.db.Where("email = ?", *dto.Email).First(&existing).Error
		if err == nil && existing.Id != id {
			return nil, ErrEmailDejaUtilise
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = *dto.Email
	}

	if dto.Nom != nil {
		updates["nom"] = *dto.Nom
	}
	if dto.LanguePreferee != nil {
		updates["langue_preferee"] = *dto.LanguePreferee
	}
	if dto.MotDePasse != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*dto.MotDePasse), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["mot_de_passe"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&utilisateur).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &utilisateur, nil
}

// DeleteUtilisateur deletes an Utilisateur record by ID
func (s *UtilisateurService) DeleteUtilisateur(id string) error {
	var utilisateur models.UtilisateurModel
	if err := s.db.First(&utilisateur, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUtilisateurNotFound
		}
		return err
	}

	return s.db.Delete(&models.UtilisateurModel{}, "id = ?", id).Error
}

// GetFavoris liste les favoris de l'utilisateur, plus récents d'abord.
func (s *UtilisateurService) GetFavoris(id string) ([]models.FavoriModel, error) {
	var favoris []models.FavoriModel
	err := s.db.
		Where("utilisateur_id = ?", id).
		Order("created_at DESC").
		Preload("Oeuvre.Descriptions").
		Find(&favoris).Error
	if err != nil {
		return nil, err
	}
	return favoris, nil
}

// GetHistorique liste les cinquante dernières consultations.
func (s *UtilisateurService) GetHistorique(id string) ([]models.HistoriqueModel, error) {
	var historique []models.HistoriqueModel
	err := s.db.
		Where("utilisateur_id = ?", id).
		Order("date_consultation DESC").
		Limit(50).
		Preload("Oeuvre").
		Find(&historique).Error
	if err != nil {
		return nil, err
	}
	return historique, nil
}

// ClearHistorique efface tout l'historique de consultation de l'utilisateur.
func (s *UtilisateurService) ClearHistorique(id string) error {
	return s.db.Delete(&models.HistoriqueModel{}, "utilisateur_id = ?", id).Error
}

// RecordConsultation trace la consultation d'une oeuvre.
func (s *UtilisateurService) RecordConsultation(utilisateurId string, oeuvreId string) error {
	entry := models.HistoriqueModel{
		UtilisateurId: utilisateurId,
		OeuvreId:      oeuvreId,
	}
	return s.db.Create(&entry).Error
}
