package models

import "time"

type OeuvreModel struct {
	Id           string  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Titre        string  `json:"titre" gorm:"type:varchar(255);not null"`
	QrCode       string  `json:"qrCode" gorm:"type:varchar(255);not null;uniqueIndex"`
	Categorie    string  `json:"categorie" gorm:"type:varchar(100);not null"`
	Artiste      *string `json:"artiste" gorm:"type:varchar(255)"`
	Localisation *string `json:"localisation" gorm:"type:varchar(255)"`
	Annee        *string `json:"annee" gorm:"type:varchar(50)"`
	ImageUrl     string  `json:"imageUrl" gorm:"type:text;not null"`

	CollectionId *string          `json:"collectionId" gorm:"type:uuid;column:collection_id"`
	Collection   *CollectionModel `json:"collection,omitempty" gorm:"foreignKey:CollectionId;references:Id;constraint:OnDelete:SET NULL;"`

	Descriptions []DescriptionModel `json:"descriptions,omitempty" gorm:"foreignKey:OeuvreId;constraint:OnDelete:CASCADE;"`
	Medias       []MediaModel       `json:"medias,omitempty" gorm:"foreignKey:OeuvreId;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OeuvreModel) TableName() string {
	return "oeuvres"
}
