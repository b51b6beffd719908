package models

import "time"

type CollectionModel struct {
	Id            string  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Nom           string  `json:"nom" gorm:"type:varchar(255);not null"`
	Description   *string `json:"description" gorm:"type:text"`
	Theme         *string `json:"theme" gorm:"type:varchar(255)"`
	ImageUrl      *string `json:"imageUrl" gorm:"type:text"`
	EstPermanente bool    `json:"estPermanente" gorm:"not null;default:true"`

	// L'oeuvre porte la clé étrangère : retirer une oeuvre de la collection
	// remet collection_id à NULL, elle n'est jamais supprimée.
	Oeuvres []OeuvreModel `json:"oeuvres,omitempty" gorm:"foreignKey:CollectionId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CollectionModel) TableName() string {
	return "collections"
}
