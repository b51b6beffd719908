package models

import (
	"time"

	"github.com/lib/pq"
)

// Types d'événements proposés par le musée.
const (
	TypeConference   = "CONFERENCE"
	TypeExposition   = "EXPOSITION"
	TypeAtelier      = "ATELIER"
	TypeSpectacle    = "SPECTACLE"
	TypeVisiteGuidee = "VISITE_GUIDEE"
	TypeAutre        = "AUTRE"
)

// Statuts du cycle de vie d'un événement.
const (
	StatutAVenir  = "A_VENIR"
	StatutEnCours = "EN_COURS"
	StatutTermine = "TERMINE"
)

type EvenementModel struct {
	Id              string         `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Titre           string         `json:"titre" gorm:"type:varchar(255);not null"`
	Type            string         `json:"type" gorm:"type:varchar(30);not null"`
	Statut          string         `json:"statut" gorm:"type:varchar(20);not null;default:'A_VENIR'"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	DateDebut       time.Time      `json:"dateDebut" gorm:"not null;index"`
	DateFin         *time.Time     `json:"dateFin"`
	HeureDebut      *string        `json:"heureDebut" gorm:"type:varchar(10)"`
	HeureFin        *string        `json:"heureFin" gorm:"type:varchar(10)"`
	Lieu            string         `json:"lieu" gorm:"type:varchar(255);not null"`
	Organisateur    *string        `json:"organisateur" gorm:"type:varchar(255)"`
	Intervenant     *string        `json:"intervenant" gorm:"type:varchar(255)"`
	CapaciteMax     *int           `json:"capaciteMax"`
	Prix            *string        `json:"prix" gorm:"type:varchar(50)"`
	Gratuit         bool           `json:"gratuit" gorm:"not null;default:true"`
	LienInscription *string        `json:"lienInscription" gorm:"type:text"`
	LienBillet      *string        `json:"lienBillet" gorm:"type:text"`
	EstPopulaire    bool           `json:"estPopulaire" gorm:"not null;default:false"`
	Tags            pq.StringArray `json:"tags" gorm:"type:text[]"`
	ImageUrl        string         `json:"imageUrl" gorm:"type:text;not null"`

	OeuvreId *string      `json:"oeuvreId" gorm:"type:uuid;column:oeuvre_id"`
	Oeuvre   *OeuvreModel `json:"oeuvre,omitempty" gorm:"foreignKey:OeuvreId;references:Id"`

	Inscriptions []InscriptionModel `json:"inscriptions,omitempty" gorm:"foreignKey:EvenementId;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (EvenementModel) TableName() string {
	return "evenements"
}
