package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MCN-Plateforme/MCN-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaTypeFromMime(t *testing.T) {
	tests := []struct {
		mimetype string
		expected string
	}{
		{"image/png", models.MediaImage},
		{"image/jpeg", models.MediaImage},
		{"video/mp4", models.MediaVideo},
		{"audio/mpeg", models.MediaAudio},
		{"application/octet-stream", models.MediaImage},
		{"", models.MediaImage},
	}

	for _, tt := range tests {
		t.Run(tt.mimetype, func(t *testing.T) {
			assert.Equal(t, tt.expected, MediaTypeFromMime(tt.mimetype))
		})
	}
}

func TestGetOeuvreByQrCode(t *testing.T) {
	t.Run("introuvable", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewOeuvreService(db, &fakeStorage{})

		mock.ExpectQuery(`SELECT \* FROM "oeuvres" WHERE qr_code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.GetOeuvreByQrCode("MCN-404", "FR")
		assert.ErrorIs(t, err, ErrOeuvreNotFound)
	})

	t.Run("langue par defaut FR", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := NewOeuvreService(db, &fakeStorage{})

		mock.ExpectQuery(`SELECT \* FROM "oeuvres" WHERE qr_code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "titre", "qr_code"}).
				AddRow(testOeuvreId, "Masque", "MCN-001"))
		mock.ExpectQuery(`SELECT \* FROM "descriptions" WHERE langue = \$1 AND "descriptions"\."oeuvre_id" = \$2`).
			WithArgs("FR", testOeuvreId).
			WillReturnRows(sqlmock.NewRows([]string{"id", "oeuvre_id", "langue", "texte"}).
				AddRow("d-1", testOeuvreId, "FR", "Un masque rituel"))
		mock.ExpectQuery(`SELECT \* FROM "medias" WHERE "medias"\."oeuvre_id" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		oeuvre, err := service.GetOeuvreByQrCode("MCN-001", "")
		require.NoError(t, err)
		require.Len(t, oeuvre.Descriptions, 1)
		assert.Equal(t, "FR", oeuvre.Descriptions[0].Langue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
