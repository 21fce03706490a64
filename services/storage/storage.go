package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUnsupportedDocument is returned for files that are not a PDF or an image scan.
var ErrUnsupportedDocument = errors.New("contract must be a PDF, JPG or PNG file")

var allowedExtensions = map[string]bool{".pdf": true, ".jpg": true, ".jpeg": true, ".png": true}

// Uploader is the part of the Cloudinary upload API used for contracts.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryDocumentStore uploads contracts to Cloudinary under folder/<landlordID>.
type CloudinaryDocumentStore struct {
	upload Uploader
	folder string
}

// NewCloudinaryDocumentStore creates a DocumentStore. Pass &cld.Upload as up.
func NewCloudinaryDocumentStore(up Uploader, folder string) *CloudinaryDocumentStore {
	return &CloudinaryDocumentStore{upload: up, folder: strings.Trim(folder, "/")}
}

// UploadContract stores the file and returns its secure URL.
func (s *CloudinaryDocumentStore) UploadContract(ctx context.Context, file io.Reader, filename, landlordID string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedDocument
	}

	unique := true
	result, err := s.upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder + "/" + landlordID,
		ResourceType:   "auto",
		UseFilename:    &unique,
		UniqueFilename: &unique,
		Tags:           []string{"contract", landlordID},
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryDocumentStore: failed to upload contract: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryDocumentStore: upload rejected: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryDocumentStore: no secure URL returned")
	}
	return result.SecureURL, nil
}

// DeleteContract removes an uploaded contract by its Cloudinary public id.
func (s *CloudinaryDocumentStore) DeleteContract(ctx context.Context, publicID string) error {
	if _, err := s.upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryDocumentStore: failed to delete contract: %w", err)
	}
	return nil
}
