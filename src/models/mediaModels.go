package models

// Types de médias associés à une oeuvre.
const (
	MediaImage = "IMAGE"
	MediaVideo = "VIDEO"
	MediaAudio = "AUDIO"
)

type MediaModel struct {
	Id       string `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OeuvreId string `json:"oeuvreId" gorm:"type:uuid;not null;index"`
	Type     string `json:"type" gorm:"type:varchar(10);not null;default:'IMAGE'"`
	Url      string `json:"url" gorm:"type:text;not null"`
}

func (MediaModel) TableName() string {
	return "medias"
}
