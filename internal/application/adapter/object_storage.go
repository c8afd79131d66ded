package adapter

import "context"

// StoredObject is a file read back from object storage.
type StoredObject struct {
	Data        []byte
	ContentType string
}

// ObjectStorage stores binary files such as the company logo.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Get returns domain ErrObjectNotFound for a missing key.
	Get(ctx context.Context, key string) (*StoredObject, error)

	Delete(ctx context.Context, key string) error
}
