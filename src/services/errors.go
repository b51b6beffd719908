package services

import "errors"

// Erreurs métier détectées dans les services et traduites en HTTP par les
// controllers. Toute autre erreur est considérée comme une erreur serveur.
var (
	ErrImageRequise          = errors.New("une image est requise")
	ErrDateInvalide          = errors.New("date invalide")
	ErrDescriptionsInvalides = errors.New("descriptions invalides")
	ErrEvenementNotFound     = errors.New("événement non trouvé")
	ErrOeuvreNotFound        = errors.New("oeuvre non trouvée")
	ErrCollectionNotFound    = errors.New("collection introuvable")
	ErrCapaciteAtteinte      = errors.New("capacité maximale atteinte")
	ErrDejaInscrit           = errors.New("vous êtes déjà inscrit à cet événement")
	ErrInscriptionNotFound   = errors.New("inscription non trouvée")
	ErrFavoriNotFound        = errors.New("favori non trouvé")
	ErrFavoriDejaPresent     = errors.New("l'oeuvre est déjà dans les favoris")
	ErrUtilisateurNotFound   = errors.New("utilisateur introuvable")
	ErrEmailDejaUtilise      = errors.New("cet email est déjà utilisé")
	ErrIdentifiantsInvalides = errors.New("email ou mot de passe incorrect")
	ErrOeuvreHorsCollection  = errors.New("l'oeuvre n'appartient pas à cette collection")
)
