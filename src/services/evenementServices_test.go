package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MCN-Plateforme/MCN-Backend/src/dtos"
	"github.com/MCN-Plateforme/MCN-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB ouvre une connexion gorm branchée sur sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

// fakeStorage enregistre les appels au stockage de médias.
type fakeStorage struct {
	uploads int
	deleted []string
}

func (f *fakeStorage) UploadImage(ctx context.Context, file io.Reader) (*utils.UploadResult, error) {
	f.uploads++
	return &utils.UploadResult{Url: "https://cdn.test/image.png", PublicId: "test/image"}, nil
}

func (f *fakeStorage) UploadVideo(ctx context.Context, file io.Reader) (*utils.UploadResult, error) {
	f.uploads++
	return &utils.UploadResult{Url: "https://cdn.test/video.mp4", PublicId: "test/video"}, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicId string, resourceType string) error {
	f.deleted = append(f.deleted, publicId)
	return nil
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"tableau JSON", `["musique","danse"]`, []string{"musique", "danse"}},
		{"valeur brute", "musique", []string{"musique"}},
		{"chaine vide", "", []string{}},
		{"JSON invalide traite comme tag unique", `["musique"`, []string{`["musique"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, []string(parseTags(tt.raw)))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("date ISO complete", func(t *testing.T) {
		parsed, err := parseDate("2025-06-15T18:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("jour seul", func(t *testing.T) {
		parsed, err := parseDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("valeur invalide", func(t *testing.T) {
		_, err := parseDate("pas-une-date")
		assert.ErrorIs(t, err, ErrDateInvalide)
	})
}

const (
	testEvenementId   = "6f1f7a1e-0bfb-4a3e-9d6e-3f6f1d2c4b5a"
	testUtilisateurId = "9a8b7c6d-5e4f-4a3b-8c9d-0e1f2a3b4c5d"
	testInscriptionId = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
)

func expectEvenementLock(mock sqlmock.Sqlmock, capaciteMax int) {
	mock.ExpectQuery(`SELECT \* FROM "evenements" WHERE id = \$1 (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titre", "capacite_max"}).
			AddRow(testEvenementId, "Nuit des musées", capaciteMax))
}

func expectNoInscription(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "inscriptions" WHERE evenement_id = \$1 AND utilisateur_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func expectPlacesPrises(mock sqlmock.Sqlmock, total int) {
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(nombre_places\), 0\) FROM "inscriptions" WHERE evenement_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(total))
}

func expectInscriptionReload(mock sqlmock.Sqlmock, nombrePlaces int) {
	mock.ExpectQuery(`SELECT \* FROM "inscriptions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "evenement_id", "utilisateur_id", "nombre_places", "date_inscrit"}).
			AddRow(testInscriptionId, testEvenementId, testUtilisateurId, nombrePlaces, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "evenements" WHERE "evenements"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titre"}).AddRow(testEvenementId, "Nuit des musées"))
	mock.ExpectQuery(`SELECT \* FROM "utilisateurs" WHERE "utilisateurs"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom", "email"}).AddRow(testUtilisateurId, "Awa", "awa@test.sn"))
}

func TestInscrire(t *testing.T) {
	places := func(n int) *int { return &n }

	t.Run("premiere inscription acceptee", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewEvenementService(db, &fakeStorage{})

		mock.ExpectBegin()
		expectEvenementLock(mock, 2)
		expectNoInscription(mock)
		expectPlacesPrises(mock, 0)
		mock.ExpectQuery(`INSERT INTO "inscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testInscriptionId))
		mock.ExpectCommit()
		expectInscriptionReload(mock, 1)

		inscription, err := service.Inscrire(testUtilisateurId, &dtos.CreateInscriptionDto{
			EvenementId: testEvenementId,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inscription.NombrePlaces)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("capacite depassee", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewEvenementService(db, &fakeStorage{})

		// Capacité 2, une place déjà prise : 2 places de plus ne passent pas
		mock.ExpectBegin()
		expectEvenementLock(mock, 2)
		expectNoInscription(mock)
		expectPlacesPrises(mock, 1)
		mock.ExpectRollback()

		_, err := service.Inscrire(testUtilisateurId, &dtos.CreateInscriptionDto{
			EvenementId:  testEvenementId,
			NombrePlaces: places(2),
		})
		assert.ErrorIs(t, err, ErrCapaciteAtteinte)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("derniere place acceptee", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewEvenementService(db, &fakeStorage{})

		mock.ExpectBegin()
		expectEvenementLock(mock, 2)
		expectNoInscription(mock)
		expectPlacesPrises(mock, 1)
		mock.ExpectQuery(`INSERT INTO "inscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testInscriptionId))
		mock.ExpectCommit()
		expectInscriptionReload(mock, 1)

		_, err := service.Inscrire(testUtilisateurId, &dtos.CreateInscriptionDto{
			EvenementId:  testEvenementId,
			NombrePlaces: places(1),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("doublon prime sur la capacite", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewEvenementService(db, &fakeStorage{})

		// Événement complet, mais l'utilisateur est déjà inscrit
		mock.ExpectBegin()
		expectEvenementLock(mock, 2)
		mock.ExpectQuery(`SELECT \* FROM "inscriptions" WHERE evenement_id = \$1 AND utilisateur_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "evenement_id", "utilisateur_id", "nombre_places"}).
				AddRow(testInscriptionId, testEvenementId, testUtilisateurId, 1))
		mock.ExpectRollback()

		_, err := service.Inscrire(testUtilisateurId, &dtos.CreateInscriptionDto{
			EvenementId: testEvenementId,
		})
		assert.ErrorIs(t, err, ErrDejaInscrit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("evenement introuvable", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewEvenementService(db, &fakeStorage{})

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "evenements" WHERE id = \$1 (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := service.Inscrire(testUtilisateurId, &dtos.CreateInscriptionDto{
			EvenementId: testEvenementId,
		})
		assert.ErrorIs(t, err, ErrEvenementNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDesinscrireIntrouvable(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewEvenementService(db, &fakeStorage{})

	mock.ExpectQuery(`SELECT \* FROM "inscriptions" WHERE evenement_id = \$1 AND utilisateur_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := service.Desinscrire(testUtilisateurId, testEvenementId)
	assert.ErrorIs(t, err, ErrInscriptionNotFound)

	// Aucune suppression ne doit être tentée
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEvenementsPagination(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewEvenementService(db, &fakeStorage{})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "evenements"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "evenements" ORDER BY date_debut ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titre", "date_debut"}).
			AddRow("e-1", "Concert", time.Now()).
			AddRow("e-2", "Atelier", time.Now()))

	evenements, meta, err := service.GetAllEvenements(&dtos.FilterEvenementDto{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, evenements, 2)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 3, meta.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEvenementsFiltreTag(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewEvenementService(db, &fakeStorage{})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "evenements" WHERE \$1 = ANY\(tags\)`).
		WithArgs("musique").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "evenements" WHERE \$1 = ANY\(tags\) ORDER BY date_debut ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	evenements, meta, err := service.GetAllEvenements(&dtos.FilterEvenementDto{Tag: "musique"})
	require.NoError(t, err)
	assert.Empty(t, evenements)
	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvenementSupprimeImage(t *testing.T) {
	db, mock := newMockDB(t)
	storage := &fakeStorage{}
	service := NewEvenementService(db, storage)

	mock.ExpectQuery(`SELECT \* FROM "evenements" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titre", "image_url"}).
			AddRow(testEvenementId, "Concert", "https://res.cloudinary.com/demo/image/upload/v1/evenements/abc123.png"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "evenements" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.DeleteEvenement(context.Background(), testEvenementId)
	require.NoError(t, err)
	assert.Equal(t, []string{"evenements/abc123"}, storage.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvenementSansImage(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewEvenementService(db, &fakeStorage{})

	_, err := service.CreateEvenement(context.Background(), &dtos.CreateEvenementDto{
		Titre:     "Concert",
		Type:      "SPECTACLE",
		DateDebut: "2025-06-15",
		Lieu:      "Auditorium",
	}, nil)
	assert.ErrorIs(t, err, ErrImageRequise)
}
