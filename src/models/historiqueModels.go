package models

import "time"

// HistoriqueModel trace les consultations d'oeuvres par un utilisateur.
type HistoriqueModel struct {
	Id               string    `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UtilisateurId    string    `json:"utilisateurId" gorm:"type:uuid;not null;index"`
	OeuvreId         string    `json:"oeuvreId" gorm:"type:uuid;not null"`
	DateConsultation time.Time `json:"dateConsultation" gorm:"not null;autoCreateTime;index"`

	Oeuvre *OeuvreModel `json:"oeuvre,omitempty" gorm:"foreignKey:OeuvreId;references:Id"`
}

func (HistoriqueModel) TableName() string {
	return "historiques"
}
