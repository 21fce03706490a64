package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	params uploader.UploadParams
	result *uploader.UploadResult
	err    error
}

func (f *fakeUploader) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.params = params
	return f.result, f.err
}

func (f *fakeUploader) Destroy(_ context.Context, _ uploader.DestroyParams) (*uploader.DestroyResult, error) {
	return &uploader.DestroyResult{Result: "ok"}, nil
}

func TestUploadContract(t *testing.T) {
	up := &fakeUploader{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/raw/upload/v1/contract.pdf"}}
	store := NewCloudinaryDocumentStore(up, "/rentwise/contracts/")

	url, err := store.UploadContract(context.Background(), strings.NewReader("%PDF"), "Lease.PDF", "landlord-1")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/raw/upload/v1/contract.pdf", url)
	assert.Equal(t, "rentwise/contracts/landlord-1", up.params.Folder)
}

func TestUploadContract_RejectsUnsupportedFiles(t *testing.T) {
	store := NewCloudinaryDocumentStore(&fakeUploader{}, "contracts")
	_, err := store.UploadContract(context.Background(), strings.NewReader("MZ"), "contract.exe", "landlord-1")
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestUploadContract_UploadFailure(t *testing.T) {
	store := NewCloudinaryDocumentStore(&fakeUploader{err: errors.New("timeout")}, "contracts")
	_, err := store.UploadContract(context.Background(), strings.NewReader("%PDF"), "contract.pdf", "landlord-1")
	assert.Error(t, err)
}
