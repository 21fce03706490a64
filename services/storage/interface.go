package storage

import (
	"context"
	"io"
)

// DocumentStore keeps signed lease contracts and returns a durable reference.
type DocumentStore interface {
	UploadContract(ctx context.Context, file io.Reader, filename, landlordID string) (string, error)
	DeleteContract(ctx context.Context, publicID string) error
}
