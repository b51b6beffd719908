package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUtilisateurEmailDejaUtilise(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewUtilisateurService(db)

	mock.ExpectQuery(`SELECT \* FROM "utilisateurs" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(testUtilisateurId, "awa@test.sn"))

	_, _, err := service.CreateUtilisateur(&dtos.CreateUtilisateurDto{
		Nom:        "Awa",
		Email:      "awa@test.sn",
		MotDePasse: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailDejaUtilise)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateUtilisateur(t *testing.T) {
	middleware.SetSecretKey("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("bon-mot-de-passe"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("mot de passe valide", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewUtilisateurService(db)

		mock.ExpectQuery(`SELECT \* FROM "utilisateurs" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nom", "email", "mot_de_passe", "role"}).
				AddRow(testUtilisateurId, "Awa", "awa@test.sn", string(hash), "VISITEUR"))

		utilisateur, token, err := service.AuthenticateUtilisateur(&dtos.LoginUtilisateurDto{
			Email:      "awa@test.sn",
			MotDePasse: "bon-mot-de-passe",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "awa@test.sn", utilisateur.Email)
	})

	t.Run("mot de passe invalide", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewUtilisateurService(db)

		mock.ExpectQuery(`SELECT \* FROM "utilisateurs" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "mot_de_passe"}).
				AddRow(testUtilisateurId, "awa@test.sn", string(hash)))

		_, _, err := service.AuthenticateUtilisateur(&dtos.LoginUtilisateurDto{
			Email:      "awa@test.sn",
			MotDePasse: "mauvais",
		})
		assert.ErrorIs(t, err, ErrIdentifiantsInvalides)
	})

	t.Run("email inconnu", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewUtilisateurService(db)

		mock.ExpectQuery(`SELECT \* FROM "utilisateurs" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, _, err := service.AuthenticateUtilisateur(&dtos.LoginUtilisateurDto{
			Email:      "inconnu@test.sn",
			MotDePasse: "peu-importe",
		})
		assert.ErrorIs(t, err, ErrIdentifiantsInvalides)
	})
}
