package models

// Langues supportées pour les descriptions d'oeuvres.
const (
	LangueFR = "FR"
	LangueEN = "EN"
	LangueWO = "WO"
)

// DescriptionModel porte le texte d'une oeuvre dans une langue donnée.
// Une seule description par langue et par oeuvre.
type DescriptionModel struct {
	Id       string `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OeuvreId string `json:"oeuvreId" gorm:"type:uuid;not null;uniqueIndex:idx_description_oeuvre_langue"`
	Langue   string `json:"langue" gorm:"type:varchar(5);not null;uniqueIndex:idx_description_oeuvre_langue"`
	Texte    string `json:"texte" gorm:"type:text;not null"`
}

func (DescriptionModel) TableName() string {
	return "descriptions"
}
