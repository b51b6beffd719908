package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicIdFromUrl(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			"URL de livraison classique",
			"https://res.cloudinary.com/demo/image/upload/v1712345/oeuvres/abc123.png",
			"oeuvres/abc123",
		},
		{
			"sans extension",
			"https://res.cloudinary.com/demo/image/upload/v1712345/oeuvres/abc123",
			"oeuvres/abc123",
		},
		{"URL trop courte", "abc123.png", ""},
		{"nom de fichier vide", "https://res.cloudinary.com/demo/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPublicIdFromUrl(tt.url))
		})
	}
}
