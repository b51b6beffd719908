package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOeuvreId = "4d3c2b1a-9e8f-4d7c-b6a5-f4e3d2c1b0a9"
	testFavoriId = "0a9b8c7d-6e5f-4a3b-9c8d-7e6f5a4b3c2d"
)

func TestToggleFavori(t *testing.T) {
	t.Run("ajoute quand absent", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewFavoriService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "favoris" WHERE utilisateur_id = \$1 AND oeuvre_id = \$2 (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "favoris"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testFavoriId))
		mock.ExpectCommit()

		result, err := service.ToggleFavori(testUtilisateurId, testOeuvreId)
		require.NoError(t, err)
		assert.Equal(t, FavoriAjoute, result.Action)
		require.NotNil(t, result.Favori)
		assert.Equal(t, testOeuvreId, result.Favori.OeuvreId)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retire quand present", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewFavoriService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "favoris" WHERE utilisateur_id = \$1 AND oeuvre_id = \$2 (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "utilisateur_id", "oeuvre_id"}).
				AddRow(testFavoriId, testUtilisateurId, testOeuvreId))
		mock.ExpectExec(`DELETE FROM "favoris" WHERE id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := service.ToggleFavori(testUtilisateurId, testOeuvreId)
		require.NoError(t, err)
		assert.Equal(t, FavoriRetire, result.Action)
		assert.Nil(t, result.Favori)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddFavoriDejaPresent(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewFavoriService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "favoris" WHERE utilisateur_id = \$1 AND oeuvre_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "utilisateur_id", "oeuvre_id"}).
			AddRow(testFavoriId, testUtilisateurId, testOeuvreId))
	mock.ExpectRollback()

	_, err := service.AddFavori(testUtilisateurId, testOeuvreId)
	assert.ErrorIs(t, err, ErrFavoriDejaPresent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFavoriIntrouvable(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewFavoriService(db)

	mock.ExpectQuery(`SELECT \* FROM "favoris" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := service.DeleteFavori(testFavoriId)
	assert.ErrorIs(t, err, ErrFavoriNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
