package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/kenv-keeper/models"
)

type memoryCredentialStore struct {
	mu    sync.RWMutex
	items map[string]models.Credentials
}

// NewMemoryCredentialStore returns a [CredentialStore] that keeps everything
// in process memory.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{items: make(map[string]models.Credentials)}
}

func (m *memoryCredentialStore) Get(_ context.Context, itemName string) (models.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	creds, ok := m.items[itemName]
	if !ok {
		return models.Credentials{}, ErrCredentialsNotFound
	}
	return creds, nil
}

func (m *memoryCredentialStore) Set(_ context.Context, creds models.Credentials) error {
	if !creds.IsComplete() {
		return ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.items[creds.ItemName]; ok && prev.CreatedAt != nil {
		creds.CreatedAt = prev.CreatedAt
	} else {
		now := time.Now().UTC()
		creds.CreatedAt = &now
	}
	m.items[creds.ItemName] = creds

	return nil
}

func (m *memoryCredentialStore) Delete(_ context.Context, itemName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, itemName)
	return nil
}

func (m *memoryCredentialStore) List(_ context.Context) ([]models.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]models.Credentials, 0, len(m.items))
	for _, creds := range m.items {
		list = append(list, creds)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ItemName < list[j].ItemName })

	return list, nil
}
