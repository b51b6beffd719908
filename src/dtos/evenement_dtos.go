package dtos

// CreateEvenementDto porte les champs multipart d'un nouvel événement.
// Le champ tags accepte soit un tableau JSON encodé en string, soit une
// valeur brute traitée comme tag unique.
type CreateEvenementDto struct {
	Titre           string   `form:"titre" binding:"required"`
	Type            string   `form:"type" binding:"required,oneof=CONFERENCE EXPOSITION ATELIER SPECTACLE VISITE_GUIDEE AUTRE"`
	Statut          string   `form:"statut" binding:"omitempty,oneof=A_VENIR EN_COURS TERMINE"`
	Description     string   `form:"description" binding:"required"`
	DateDebut       string   `form:"dateDebut" binding:"required"`
	DateFin         *string  `form:"dateFin"`
	HeureDebut      *string  `form:"heureDebut"`
	HeureFin        *string  `form:"heureFin"`
	Lieu            string   `form:"lieu" binding:"required"`
	Organisateur    *string  `form:"organisateur"`
	Intervenant     *string  `form:"intervenant"`
	CapaciteMax     *int     `form:"capaciteMax" binding:"omitempty,min=1"`
	Prix            *float64 `form:"prix" binding:"omitempty,min=0"`
	Gratuit         *bool    `form:"gratuit"`
	LienInscription *string  `form:"lienInscription"`
	LienBillet      *string  `form:"lienBillet"`
	EstPopulaire    *bool    `form:"estPopulaire"`
	Tags            string   `form:"tags"`
	OeuvreId        *string  `form:"oeuvreId"`
}

// UpdateEvenementDto : tous les champs optionnels, seuls les champs fournis
// sont écrits.
type UpdateEvenementDto struct {
	Titre           *string  `form:"titre"`
	Type            *string  `form:"type" binding:"omitempty,oneof=CONFERENCE EXPOSITION ATELIER SPECTACLE VISITE_GUIDEE AUTRE"`
	Statut          *string  `form:"statut" binding:"omitempty,oneof=A_VENIR EN_COURS TERMINE"`
	Description     *string  `form:"description"`
	DateDebut       *string  `form:"dateDebut"`
	DateFin         *string  `form:"dateFin"`
	HeureDebut      *string  `form:"heureDebut"`
	HeureFin        *string  `form:"heureFin"`
	Lieu            *string  `form:"lieu"`
	Organisateur    *string  `form:"organisateur"`
	Intervenant     *string  `form:"intervenant"`
	CapaciteMax     *int     `form:"capaciteMax" binding:"omitempty,min=1"`
	Prix            *float64 `form:"prix" binding:"omitempty,min=0"`
	Gratuit         *bool    `form:"gratuit"`
	LienInscription *string  `form:"lienInscription"`
	LienBillet      *string  `form:"lienBillet"`
	EstPopulaire    *bool    `form:"estPopulaire"`
	Tags            *string  `form:"tags"`
	OeuvreId        *string  `form:"oeuvreId"`
}

// FilterEvenementDto reprend les query params de GET /evenements.
type FilterEvenementDto struct {
	Type           string `form:"type" binding:"omitempty,oneof=CONFERENCE EXPOSITION ATELIER SPECTACLE VISITE_GUIDEE AUTRE"`
	Statut         string `form:"statut" binding:"omitempty,oneof=A_VENIR EN_COURS TERMINE"`
	DateDebutApres string `form:"dateDebutApres"`
	DateDebutAvant string `form:"dateDebutAvant"`
	EstPopulaire   *bool  `form:"estPopulaire"`
	Gratuit        *bool  `form:"gratuit"`
	Recherche      string `form:"recherche"`
	Tag            string `form:"tag"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	Limit          int    `form:"limit" binding:"omitempty,min=1"`
}

type CreateInscriptionDto struct {
	EvenementId  string `json:"evenementId" binding:"required"`
	NombrePlaces *int   `json:"nombrePlaces" binding:"omitempty,min=1"`
}

// PaginationMeta accompagne toute liste paginée.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type StatistiquesEvenementsDto struct {
	Total      int64 `json:"total"`
	AVenir     int64 `json:"aVenir"`
	EnCours    int64 `json:"enCours"`
	Termines   int64 `json:"termines"`
	Populaires int64 `json:"populaires"`
}
