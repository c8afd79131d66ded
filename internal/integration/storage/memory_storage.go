package storage

import (
	"context"
	"sync"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

var _ adapter.ObjectStorage = (*MemoryStorage)(nil)

// MemoryStorage keeps objects in process memory. It is used when no S3 bucket
// is configured and in tests; objects are lost on restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]adapter.StoredObject
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]adapter.StoredObject)}
}

// Put stores a copy of data under key.
func (m *MemoryStorage) Put(_ context.Context, key, contentType string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = adapter.StoredObject{Data: buf, ContentType: contentType}
	return nil
}

// Get returns a copy of the object stored under key.
func (m *MemoryStorage) Get(_ context.Context, key string) (*adapter.StoredObject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, domainerror.ErrObjectNotFound
	}
	buf := make([]byte, len(obj.Data))
	copy(buf, obj.Data)
	return &adapter.StoredObject{Data: buf, ContentType: obj.ContentType}, nil
}

// Delete removes key.
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}
