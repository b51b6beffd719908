package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadResult contient l'URL publique et l'identifiant de suppression
// d'un fichier stocké.
type UploadResult struct {
	Url      string
	PublicId string
}

// FileStorage est le contrat du stockage de fichiers distant. Les services
// reçoivent cette interface pour pouvoir y substituer un faux en test.
type FileStorage interface {
	UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error)
	// UploadVideo couvre aussi l'audio (Cloudinary traite audio comme video).
	UploadVideo(ctx context.Context, file io.Reader) (*UploadResult, error)
	DeleteFile(ctx context.Context, publicId string, resourceType string) error
}

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initialise le client Cloudinary depuis CLOUDINARY_URL.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true

	log.Println("Cloudinary storage initialized")

	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "oeuvres/images",
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary image upload: %w", err)
	}

	return &UploadResult{Url: result.SecureURL, PublicId: result.PublicID}, nil
}

func (s *CloudinaryStorage) UploadVideo(ctx context.Context, file io.Reader) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "oeuvres/medias",
		PublicID:     uuid.NewString(),
		ResourceType: "video",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary media upload: %w", err)
	}

	return &UploadResult{Url: result.SecureURL, PublicId: result.PublicID}, nil
}

func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicId string, resourceType string) error {
	if resourceType == "" {
		resourceType = "image"
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicId,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("cloudinary delete %s: %w", publicId, err)
	}

	return nil
}

// ExtractPublicIdFromUrl retrouve le public_id Cloudinary (dossier/nom sans
// extension) depuis une URL de livraison. Retourne "" si l'URL ne se découpe pas.
func ExtractPublicIdFromUrl(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}

	filename := parts[len(parts)-1]
	publicId := strings.SplitN(filename, ".", 2)[0]
	if publicId == "" {
		return ""
	}

	folder := parts[len(parts)-2]
	return folder + "/" + publicId
}
