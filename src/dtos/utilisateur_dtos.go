package dtos

type CreateUtilisateurDto struct {
	Nom            string `json:"nom" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	MotDePasse     string `json:"motDePasse" binding:"required,min=6"`
	LanguePreferee string `json:"languePreferee" binding:"omitempty,oneof=FR EN WO"`
}

type UpdateUtilisateurDto struct {
	Nom            *string `json:"nom"`
	Email          *string `json:"email" binding:"omitempty,email"`
	MotDePasse     *string `json:"motDePasse" binding:"omitempty,min=6"`
	LanguePreferee *string `json:"languePreferee" binding:"omitempty,oneof=FR EN WO"`
}

type LoginUtilisateurDto struct {
	Email      string `json:"email" binding:"required,email"`
	MotDePasse string `json:"motDePasse" binding:"required"`
}
