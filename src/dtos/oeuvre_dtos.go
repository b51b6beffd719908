package dtos

// CreateOeuvreDto porte les champs multipart d'une nouvelle oeuvre.
// Le champ descriptions accepte un tableau JSON encodé en string.
type CreateOeuvreDto struct {
	Titre        string  `form:"titre" binding:"required"`
	QrCode       string  `form:"qrCode" binding:"required"`
	Categorie    string  `form:"categorie" binding:"required"`
	Artiste      *string `form:"artiste"`
	Localisation *string `form:"localisation"`
	Annee        *string `form:"annee"`
	CollectionId *string `form:"collectionId"`
	Descriptions string  `form:"descriptions"`
}

type UpdateOeuvreDto struct {
	Titre        *string `form:"titre"`
	QrCode       *string `form:"qrCode"`
	Categorie    *string `form:"categorie"`
	Artiste      *string `form:"artiste"`
	Localisation *string `form:"localisation"`
	Annee        *string `form:"annee"`
}

type DescriptionInputDto struct {
	Langue string `json:"langue" binding:"required,oneof=FR EN WO"`
	Texte  string `json:"texte" binding:"required"`
}

type UpdateDescriptionsDto struct {
	Descriptions []DescriptionInputDto `json:"descriptions" binding:"required,min=1,dive"`
}
