package dtos

type CreateFavoriDto struct {
	OeuvreId string `json:"oeuvreId" binding:"required"`
}

type UpdateFavoriDto struct {
	UtilisateurId *string `json:"utilisateurId"`
	OeuvreId      *string `json:"oeuvreId"`
}
