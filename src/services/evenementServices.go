package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/MCN-Plateforme/MCN-Backend/src/utils"
	"github.com/lib/pq"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvenementService struct {
	db      *gorm.DB
	storage utils.FileStorage
}

// NewEvenementService creates a new instance of EvenementService
func NewEvenementService(db *gorm.DB, storage utils.FileStorage) *EvenementService {
	return &EvenementService{db: db, storage: storage}
}

// parseTags accepte soit un tableau JSON encodé en string soit une valeur
// brute, traitée alors comme tag unique. Chaîne vide = aucun tag.
func parseTags(raw string) pq.StringArray {
	if raw == "" {
		return pq.StringArray{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return pq.StringArray{raw}
	}
	return pq.StringArray(parsed)
}

// parseDate accepte une date ISO complète ou un simple jour (2006-01-02).
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateInvalide, value)
	}
	return t, nil
}

// CreateEvenement creates a new Evenement record, uploading its image first.
// L'image est obligatoire.
func (s *EvenementService) CreateEvenement(ctx context.Context, dto *dtos.CreateEvenementDto, image io.Reader) (*models.EvenementModel, error) {
	if image == nil {
		return nil, ErrImageRequise
	}

	dateDebut, err := parseDate(dto.DateDebut)
	if err != nil {
		return nil, err
	}

	var dateFin *time.Time
	if dto.DateFin != nil && *dto.DateFin != "" {
		parsed, err := parseDate(*dto.DateFin)
		if err != nil {
			return nil, err
		}
		dateFin = &parsed
	}

	// Vérifier que l'oeuvre associée existe avant d'uploader quoi que ce soit
	if dto.OeuvreId != nil && *dto.OeuvreId != "" {
		var oeuvre models.OeuvreModel
		if err := s.db.First(&oeuvre, "id = ?", *dto.OeuvreId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOeuvreNotFound
			}
			return nil, err
		}
	}

	upload, err := s.storage.UploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	evenement := models.EvenementModel{
		Titre:           dto.Titre,
		Type:            dto.Type,
		Statut:          models.StatutAVenir,
		Description:     dto.Description,
		DateDebut:       dateDebut,
		DateFin:         dateFin,
		HeureDebut:      dto.HeureDebut,
		HeureFin:        dto.HeureFin,
		Lieu:            dto.Lieu,
		Organisateur:    dto.Organisateur,
		Intervenant:     dto.Intervenant,
		CapaciteMax:     dto.CapaciteMax,
		Gratuit:         true,
		LienInscription: dto.LienInscription,
		LienBillet:      dto.LienBillet,
		Tags:            parseTags(dto.Tags),
		ImageUrl:        upload.Url,
		OeuvreId:        dto.OeuvreId,
	}

	if dto.Statut != "" {
		evenement.Statut = dto.Statut
	}
	if dto.Gratuit != nil {
		evenement.Gratuit = *dto.Gratuit
	}
	if dto.EstPopulaire != nil {
		evenement.EstPopulaire = *dto.EstPopulaire
	}
	if dto.Prix != nil {
		prix := strconv.FormatFloat(*dto.Prix, 'f', -1, 64)
		evenement.Prix = &prix
	}

	if err := s.db.Create(&evenement).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Oeuvre").First(&evenement, "id = ?", evenement.Id).Error; err != nil {
		return nil, err
	}

	return &evenement, nil
}

// GetAllEvenements applique les filtres conjointement et pagine le résultat,
// trié par date de début croissante.
func (s *EvenementService) GetAllEvenements(filters *dtos.FilterEvenementDto) ([]models.EvenementModel, *dtos.PaginationMeta, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 10
	}

	query := s.db.Model(&models.EvenementModel{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Statut != "" {
		query = query.Where("statut = ?", filters.Statut)
	}
	if filters.EstPopulaire != nil {
		query = query.Where("est_populaire = ?", *filters.EstPopulaire)
	}
	if filters.Gratuit != nil {
		query = query.Where("gratuit = ?", *filters.Gratuit)
	}
	if filters.DateDebutApres != "" {
		after, err := parseDate(filters.DateDebutApres)
		if err != nil {
			return nil, nil, err
		}
		query = query.Where("date_debut >= ?", after)
	}
	if filters.DateDebutAvant != "" {
		before, err := parseDate(filters.DateDebutAvant)
		if err != nil {
			return nil, nil, err
		}
		query = query.Where("date_debut <= ?", before)
	}
	if filters.Recherche != "" {
		pattern := "%" + filters.Recherche + "%"
		query = query.Where("titre ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filters.Tag != "" {
		// Appartenance exacte au tableau de tags, sensible à la casse
		query = query.Where("? = ANY(tags)", filters.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var evenements []models.EvenementModel
	if err := query.
		Order("date_debut ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Oeuvre").
		Find(&evenements).Error; err != nil {
		return nil, nil, err
	}

	meta := &dtos.PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	return evenements, meta, nil
}

// GetEvenementByID retrieves an Evenement with its oeuvre and inscriptions
func (s *EvenementService) GetEvenementByID(id string) (*models.EvenementModel, error) {
	var evenement models.EvenementModel

	err := s.db.
		Preload("Oeuvre").
		Preload("Inscriptions").
		Preload("Inscriptions.Utilisateur").
		First(&evenement, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvenementNotFound
		}
		return nil, err
	}

	return &evenement, nil
}

// UpdateEvenement met à jour partiellement un événement. Si une nouvelle
// image est fournie, l'ancienne est supprimée du stockage (au mieux) avant
// l'upload de la nouvelle.
func (s *EvenementService) UpdateEvenement(ctx context.Context, id string, dto *dtos.UpdateEvenementDto, image io.Reader) (*models.EvenementModel, error) {
	var evenement models.EvenementModel
	if err := s.db.First(&evenement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvenementNotFound
		}
		return nil, err
	}

	if dto.OeuvreId != nil && *dto.OeuvreId != "" {
		var oeuvre models.OeuvreModel
		if err := s.db.First(&oeuvre, "id = ?", *dto.OeuvreId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOeuvreNotFound
			}
			return nil, err
		}
	}

	updates := map[string]interface{}{}

	if image != nil {
		if evenement.ImageUrl != "" {
			if publicId := utils.ExtractPublicIdFromUrl(evenement.ImageUrl); publicId != "" {
				if err := s.storage.DeleteFile(ctx, publicId, "image"); err != nil {
					log.Printf("could not delete old event image %s: %v", publicId, err)
				}
			}
		}

		upload, err := s.storage.UploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updates["image_url"] = upload.Url
	}

	if dto.Titre != nil {
		updates["titre"] = *dto.Titre
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.Statut != nil {
		updates["statut"] = *dto.Statut
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.DateDebut != nil {
		dateDebut, err := parseDate(*dto.DateDebut)
		if err != nil {
			return nil, err
		}
		updates["date_debut"] = dateDebut
	}
	if dto.DateFin != nil {
		dateFin, err := parseDate(*dto.DateFin)
		if err != nil {
			return nil, err
		}
		updates["date_fin"] = dateFin
	}
	if dto.HeureDebut != nil {
		updates["heure_debut"] = *dto.HeureDebut
	}
	if dto.HeureFin != nil {
		updates["heure_fin"] = *dto.HeureFin
	}
	if dto.Lieu != nil {
		updates["lieu"] = *dto.Lieu
	}
	if dto.Organisateur != nil {
		updates["organisateur"] = *dto.Organisateur
	}
	if dto.Intervenant != nil {
		updates["intervenant"] = *dto.Intervenant
	}
	if dto.CapaciteMax != nil {
		updates["capacite_max"] = *dto.CapaciteMax
	}
	if dto.Prix != nil {
		updates["prix"] = strconv.FormatFloat(*dto.Prix, 'f', -1, 64)
	}
	if dto.Gratuit != nil {
		updates["gratuit"] = *dto.Gratuit
	}
	if dto.LienInscription != nil {
		updates["lien_inscription"] = *dto.LienInscription
	}
	if dto.LienBillet != nil {
		updates["lien_billet"] = *dto.LienBillet
	}
	if dto.EstPopulaire != nil {
		updates["est_populaire"] = *dto.EstPopulaire
	}
	if dto.Tags != nil {
		updates["tags"] = parseTags(*dto.Tags)
	}
	if dto.OeuvreId != nil {
		updates["oeuvre_id"] = *dto.OeuvreId
	}

	if len(updates) > 0 {
		if err := s.db.Model(&evenement).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("Oeuvre").First(&evenement, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &evenement, nil
}

// DeleteEvenement supprime l'événement et son image stockée. Les
// inscriptions sont supprimées en cascade par la base.
func (s *EvenementService) DeleteEvenement(ctx context.Context, id string) error {
	var evenement models.EvenementModel
	if err := s.db.First(&evenement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEvenementNotFound
		}
		return err
	}

	if evenement.ImageUrl != "" {
		if publicId := utils.ExtractPublicIdFromUrl(evenement.ImageUrl); publicId != "" {
			if err := s.storage.DeleteFile(ctx, publicId, "image"); err != nil {
				log.Printf("could not delete event image %s: %v", publicId, err)
			}
		}
	}

	return s.db.Delete(&models.EvenementModel{}, "id = ?", id).Error
}

// ======================= INSCRIPTIONS =======================

// Inscrire enregistre un utilisateur à un événement. Contrôle de capacité,
// contrôle de doublon et insertion s'exécutent dans une même transaction,
// l'événement étant verrouillé pour sérialiser les inscriptions concurrentes.
func (s *EvenementService) Inscrire(utilisateurId string, dto *dtos.CreateInscriptionDto) (*models.InscriptionModel, error) {
	nombrePlaces := 1
	if dto.NombrePlaces != nil {
		nombrePlaces = *dto.NombrePlaces
	}

	var inscription models.InscriptionModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var evenement models.EvenementModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&evenement, "id = ?", dto.EvenementId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEvenementNotFound
			}
			return err
		}

		// Une seule inscription par utilisateur, même s'il reste des places.
		// Le doublon prime sur la capacité.
		var existing models.InscriptionModel
		err := tx.
			Where("evenement_id = ? AND utilisateur_id = ?", dto.EvenementId, utilisateurId).
			First(&existing).Error
		if err == nil {
			return ErrDejaInscrit
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if evenement.CapaciteMax != nil {
			var totalPlaces int64
			if err := tx.Model(&models.InscriptionModel{}).
				Where("evenement_id = ?", dto.EvenementId).
				Select("COALESCE(SUM(nombre_places), 0)").
				Scan(&totalPlaces).Error; err != nil {
				return err
			}

			if int(totalPlaces)+nombrePlaces > *evenement.CapaciteMax {
				return ErrCapaciteAtteinte
			}
		}

		inscription = models.InscriptionModel{
			EvenementId:   dto.EvenementId,
			UtilisateurId: utilisateurId,
			NombrePlaces:  nombrePlaces,
		}

		return tx.Create(&inscription).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.
		Preload("Evenement").
		Preload("Utilisateur").
		First(&inscription, "id = ?", inscription.Id).Error; err != nil {
		return nil, err
	}

	return &inscription, nil
}

// Desinscrire retire l'inscription du couple (evenement, utilisateur).
func (s *EvenementService) Desinscrire(utilisateurId string, evenementId string) error {
	var inscription models.InscriptionModel
	err := s.db.
		Where("evenement_id = ? AND utilisateur_id = ?", evenementId, utilisateurId).
		First(&inscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInscriptionNotFound
		}
		return err
	}

	return s.db.Delete(&models.InscriptionModel{}, "id = ?", inscription.Id).Error
}

// GetInscriptions liste les inscriptions d'un événement, plus récentes d'abord.
func (s *EvenementService) GetInscriptions(evenementId string) ([]models.InscriptionModel, error) {
	var evenement models.EvenementModel
	if err := s.db.First(&evenement, "id = ?", evenementId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvenementNotFound
		}
		return nil, err
	}

	var inscriptions []models.InscriptionModel
	err := s.db.
		Where("evenement_id = ?", evenementId).
		Order("date_inscrit DESC").
		Preload("Utilisateur").
		Find(&inscriptions).Error
	if err != nil {
		return nil, err
	}

	return inscriptions, nil
}

// GetMesInscriptions liste les inscriptions d'un utilisateur.
func (s *EvenementService) GetMesInscriptions(utilisateurId string) ([]models.InscriptionModel, error) {
	var inscriptions []models.InscriptionModel
	err := s.db.
		Where("utilisateur_id = ?", utilisateurId).
		Order("date_inscrit DESC").
		Preload("Evenement").
		Find(&inscriptions).Error
	if err != nil {
		return nil, err
	}

	return inscriptions, nil
}

// GetStatistiques compte les événements par statut et les populaires.
func (s *EvenementService) GetStatistiques() (*dtos.StatistiquesEvenementsDto, error) {
	stats := &dtos.StatistiquesEvenementsDto{}

	counts := []struct {
		dest  *int64
		where map[string]interface{}
	}{
		{&stats.Total, nil},
		{&stats.AVenir, map[string]interface{}{"statut": models.StatutAVenir}},
		{&stats.EnCours, map[string]interface{}{"statut": models.StatutEnCours}},
		{&stats.Termines, map[string]interface{}{"statut": models.StatutTermine}},
		{&stats.Populaires, map[string]interface{}{"est_populaire": true}},
	}

	for _, c := range counts {
		query := s.db.Model(&models.EvenementModel{})
		if c.where != nil {
			query = query.Where(c.where)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// ExportInscriptions construit un classeur Excel des inscriptions d'un
// événement (une ligne par inscription).
func (s *EvenementService) ExportInscriptions(evenementId string) (*excelize.File, error) {
	var evenement models.EvenementModel
	if err := s.db.First(&evenement, "id = ?", evenementId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvenementNotFound
		}
		return nil, err
	}

	var inscriptions []models.InscriptionModel
	if err := s.db.
		Where("evenement_id = ?", evenementId).
		Order("date_inscrit DESC").
		Preload("Utilisateur").
		Find(&inscriptions).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Inscriptions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Nom", "Email", "Places", "Date d'inscription"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, inscription := range inscriptions {
		nom, email := "", ""
		if inscription.Utilisateur != nil {
			nom = inscription.Utilisateur.Nom
			email = inscription.Utilisateur.Email
		}

		values := []interface{}{
			nom,
			email,
			inscription.NombrePlaces,
			inscription.DateInscrit.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
