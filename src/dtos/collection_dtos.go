package dtos

type CreateCollectionDto struct {
	Nom           string  `form:"nom" binding:"required"`
	Description   *string `form:"description"`
	Theme         *string `form:"theme"`
	EstPermanente *bool   `form:"estPermanente"`
}

type UpdateCollectionDto struct {
	Nom           *string `form:"nom"`
	Description   *string `form:"description"`
	Theme         *string `form:"theme"`
	EstPermanente *bool   `form:"estPermanente"`
}
