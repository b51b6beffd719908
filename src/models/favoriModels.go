package models

import "time"

// FavoriModel marque une oeuvre comme favorite d'un utilisateur.
// Un seul favori par couple (utilisateur, oeuvre).
type FavoriModel struct {
	Id            string    `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UtilisateurId string    `json:"utilisateurId" gorm:"type:uuid;not null;uniqueIndex:idx_favori_utilisateur_oeuvre"`
	OeuvreId      string    `json:"oeuvreId" gorm:"type:uuid;not null;uniqueIndex:idx_favori_utilisateur_oeuvre"`
	CreatedAt     time.Time `json:"createdAt"`

	Utilisateur *UtilisateurModel `json:"utilisateur,omitempty" gorm:"foreignKey:UtilisateurId;references:Id"`
	Oeuvre      *OeuvreModel      `json:"oeuvre,omitempty" gorm:"foreignKey:OeuvreId;references:Id"`
}

func (FavoriModel) TableName() string {
	return "favoris"
}
