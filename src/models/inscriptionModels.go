package models

import "time"

// InscriptionModel lie un utilisateur à un événement. Un seul enregistrement
// par couple (evenement, utilisateur), garanti par l'index unique composé.
type InscriptionModel struct {
	Id            string    `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EvenementId   string    `json:"evenementId" gorm:"type:uuid;not null;uniqueIndex:idx_inscription_evenement_utilisateur"`
	UtilisateurId string    `json:"utilisateurId" gorm:"type:uuid;not null;uniqueIndex:idx_inscription_evenement_utilisateur"`
	NombrePlaces  int       `json:"nombrePlaces" gorm:"not null;default:1"`
	DateInscrit   time.Time `json:"dateInscrit" gorm:"not null;autoCreateTime;index"`

	Evenement   *EvenementModel   `json:"evenement,omitempty" gorm:"foreignKey:EvenementId;references:Id"`
	Utilisateur *UtilisateurModel `json:"utilisateur,omitempty" gorm:"foreignKey:UtilisateurId;references:Id"`
}

func (InscriptionModel) TableName() string {
	return "inscriptions"
}
