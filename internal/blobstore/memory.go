package blobstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and local runs without a
// database. Blobs are copied on the way in and out.
type MemoryStore struct {
	mtx   sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save return FailErr, for exercising the
	// non-fatal write-failure path.
	FailSaves bool
	FailErr   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func key(userID, collection string) string {
	return userID + "/" + collection
}

func (s *MemoryStore) Load(ctx context.Context, userID, collection string) ([]byte, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	data, ok := s.blobs[key(userID, collection)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, userID, collection string, data []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.FailSaves {
		return s.FailErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key(userID, collection)] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID, collection string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.blobs, key(userID, collection))
	return nil
}
