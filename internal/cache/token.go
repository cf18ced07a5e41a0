package cache

import (
	"fmt"
)

// TokenStore keeps raw github api token under a single key.
type TokenStore struct {
	store KVStore
	key   []byte
}

// NewTokenStore creates new TokenStore instance.
func NewTokenStore(store KVStore, key string) *TokenStore {
	return &TokenStore{
		store: store,
		key:   []byte(key),
	}
}

// Load returns stored token. ok is false if there's no token stored.
func (s *TokenStore) Load() (token string, ok bool, err error) {
	data, err := s.store.ReadKey(s.key)
	if err != nil {
		return "", false, fmt.Errorf("reading token: %w", err)
	}
	if len(data) == 0 {
		return "", false, nil
	}

	return string(data), true, nil
}

// Save stores token.
func (s *TokenStore) Save(token string) error {
	if err := s.store.UpdateKey(s.key, []byte(token)); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	return nil
}
