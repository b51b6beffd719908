package models

import "time"

// Rôles applicatifs.
const (
	RoleVisiteur = "VISITEUR"
	RoleAdmin    = "ADMIN"
)

type UtilisateurModel struct {
	Id             string `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Nom            string `json:"nom" gorm:"type:varchar(255);not null"`
	Email          string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	MotDePasse     string `json:"-" gorm:"type:varchar(255);not null"`
	LanguePreferee string `json:"languePreferee" gorm:"type:varchar(5);not null;default:'FR'"`
	Role           string `json:"role" gorm:"type:varchar(20);not null;default:'VISITEUR'"`

	Favoris      []FavoriModel      `json:"favoris,omitempty" gorm:"foreignKey:UtilisateurId;constraint:OnDelete:CASCADE;"`
	Inscriptions []InscriptionModel `json:"inscriptions,omitempty" gorm:"foreignKey:UtilisateurId;constraint:OnDelete:CASCADE;"`
	Historique   []HistoriqueModel  `json:"historique,omitempty" gorm:"foreignKey:UtilisateurId;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UtilisateurModel) TableName() string {
	return "utilisateurs"
}
