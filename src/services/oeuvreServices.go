package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/MCN-Plateforme/MCN-Backend/src/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MediaFile est un média uploadé (image, vidéo ou audio) avec son type MIME.
type MediaFile struct {
	ContentType string
	Data        io.Reader
}

type OeuvreService struct {
	db      *gorm.DB
	storage utils.FileStorage
}

// NewOeuvreService creates a new instance of OeuvreService
func NewOeuvreService(db *gorm.DB, storage utils.FileStorage) *OeuvreService {
	return &OeuvreService{db: db, storage: storage}
}

// MediaTypeFromMime déduit le type de média du préfixe MIME. Tout type
// inconnu est traité comme une image.
func MediaTypeFromMime(mimetype string) string {
	switch {
	case strings.HasPrefix(mimetype, "video/"):
		return models.MediaVideo
	case strings.HasPrefix(mimetype, "audio/"):
		return models.MediaAudio
	default:
		return models.MediaImage
	}
}

// uploadMedia route le fichier vers le bon type de ressource Cloudinary
// (l'audio passe par la ressource video).
func (s *OeuvreService) uploadMedia(ctx context.Context, media MediaFile) (*utils.UploadResult, error) {
	if strings.HasPrefix(media.ContentType, "video/") || strings.HasPrefix(media.ContentType, "audio/") {
		return s.storage.UploadVideo(ctx, media.Data)
	}
	return s.storage.UploadImage(ctx, media.Data)
}

// CreateOeuvre crée l'oeuvre avec ses descriptions et médias imbriqués.
// L'image principale est obligatoire.
func (s *OeuvreService) CreateOeuvre(ctx context.Context, dto *dtos.CreateOeuvreDto, image io.Reader, medias []MediaFile) (*models.OeuvreModel, error) {
	if image == nil {
		return nil, ErrImageRequise
	}

	var descriptions []dtos.DescriptionInputDto
	if dto.Descriptions != "" {
		if err := json.Unmarshal([]byte(dto.Descriptions), &descriptions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDescriptionsInvalides, err)
		}
	}

	upload, err := s.storage.UploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	oeuvre := models.OeuvreModel{
		Titre:        dto.Titre,
		QrCode:       dto.QrCode,
		Categorie:    dto.Categorie,
		Artiste:      dto.Artiste,
		Localisation: dto.Localisation,
		Annee:        dto.Annee,
		ImageUrl:     upload.Url,
		CollectionId: dto.CollectionId,
	}

	for _, desc := range descriptions {
		oeuvre.Descriptions = append(oeuvre.Descriptions, models.DescriptionModel{
			Langue: strings.ToUpper(desc.Langue),
			Texte:  desc.Texte,
		})
	}

	for _, media := range medias {
		result, err := s.uploadMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		oeuvre.Medias = append(oeuvre.Medias, models.MediaModel{
			Type: MediaTypeFromMime(media.ContentType),
			Url:  result.Url,
		})
	}

	if err := s.db.Create(&oeuvre).Error; err != nil {
		return nil, err
	}

	return &oeuvre, nil
}

// GetAllOeuvres liste les oeuvres, descriptions filtrées par langue si fournie.
func (s *OeuvreService) GetAllOeuvres(langue string) ([]models.OeuvreModel, error) {
	var oeuvres []models.OeuvreModel

	query := s.db.Preload("Medias")
	if langue != "" {
		query = query.Preload("Descriptions", "langue = ?", strings.ToUpper(langue))
	} else {
		query = query.Preload("Descriptions")
	}

	if err := query.Find(&oeuvres).Error; err != nil {
		return nil, err
	}
	return oeuvres, nil
}

// GetOeuvreByID retrieves an Oeuvre with its descriptions and medias
func (s *OeuvreService) GetOeuvreByID(id string, langue string) (*models.OeuvreModel, error) {
	var oeuvre models.OeuvreModel

	query := s.db.Preload("Medias")
	if langue != "" {
		query = query.Preload("Descriptions", "langue = ?", strings.ToUpper(langue))
	} else {
		query = query.Preload("Descriptions")
	}

	if err := query.First(&oeuvre, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOeuvreNotFound
		}
		return nil, err
	}

	return &oeuvre, nil
}

// GetOeuvreByQrCode retrouve une oeuvre par son code QR unique. Les
// descriptions sont filtrées par langue, FR par défaut.
func (s *OeuvreService) GetOeuvreByQrCode(qrCode string, langue string) (*models.OeuvreModel, error) {
	if langue == "" {
		langue = models.LangueFR
	}

	var oeuvre models.OeuvreModel
	err := s.db.
		Preload("Descriptions", "langue = ?", strings.ToUpper(langue)).
		Preload("Medias").
		First(&oeuvre, "qr_code = ?", qrCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOeuvreNotFound
		}
		return nil, err
	}

	return &oeuvre, nil
}

// UpdateOeuvre met à jour les champs fournis; les nouveaux médias sont
// ajoutés sans supprimer les anciens.
func (s *OeuvreService) UpdateOeuvre(ctx context.Context, id string, dto *dtos.UpdateOeuvreDto, image io.Reader, medias []MediaFile) (*models.OeuvreModel, error) {
	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOeuvreNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}

	if image != nil {
		upload, err := s.storage.UploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updates["image_url"] = upload.Url
	}

	if dto.Titre != nil {
		updates["titre"] = *dto.Titre
	}
	if dto.QrCode != nil {
		updates["qr_code"] = *dto.QrCode
	}
	if dto.Categorie != nil {
		updates["categorie"] = *dto.Categorie
	}
	if dto.Artiste != nil {
		updates["artiste"] = *dto.Artiste
	}
	if dto.Localisation != nil {
		updates["localisation"] = *dto.Localisation
	}
	if dto.Annee != nil {
		updates["annee"] = *dto.Annee
	}

	if len(updates) > 0 {
		if err := s.db.Model(&oeuvre).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	for _, media := range medias {
		result, err := s.uploadMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		newMedia := models.MediaModel{
			OeuvreId: id,
			Type:     MediaTypeFromMime(media.ContentType),
			Url:      result.Url,
		}
		if err := s.db.Create(&newMedia).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.
		Preload("Descriptions").
		Preload("Medias").
		First(&oeuvre, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &oeuvre, nil
}

// DeleteOeuvre supprime l'oeuvre; descriptions et médias suivent en cascade.
func (s *OeuvreService) DeleteOeuvre(id string) error {
	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOeuvreNotFound
		}
		return err
	}

	return s.db.Delete(&models.OeuvreModel{}, "id = ?", id).Error
}

// UpdateDescriptions remplace l'ensemble des descriptions d'une oeuvre.
func (s *OeuvreService) UpdateDescriptions(oeuvreId string, descriptions []dtos.DescriptionInputDto) (*models.OeuvreModel, error) {
	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", oeuvreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOeuvreNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.DescriptionModel{}, "oeuvre_id = ?", oeuvreId).Error; err != nil {
			return err
		}

		rows := make([]models.DescriptionModel, 0, len(descriptions))
		for _, desc := range descriptions {
			rows = append(rows, models.DescriptionModel{
				OeuvreId: oeuvreId,
				Langue:   strings.ToUpper(desc.Langue),
				Texte:    desc.Texte,
			})
		}

		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetOeuvreByID(oeuvreId, "")
}

// UpsertDescription crée ou remplace la description d'une langue donnée.
func (s *OeuvreService) UpsertDescription(oeuvreId string, langue string, texte string) (*models.DescriptionModel, error) {
	var oeuvre models.OeuvreModel
	if err := s.db.First(&oeuvre, "id = ?", oeuvreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOeuvreNotFound
		}
		return nil, err
	}

	description := models.DescriptionModel{
		OeuvreId: oeuvreId,
		Langue:   strings.ToUpper(langue),
		Texte:    texte,
	}

	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "oeuvre_id"}, {Name: "langue"}},
			DoUpdates: clause.AssignmentColumns([]string{"texte"}),
		}).
		Create(&description).Error
	if err != nil {
		return nil, err
	}

	return &description, nil
}
