package client

import "sync"

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// CredentialStore persists the token pair between calls. The app backs
// this with the platform keystore; the in-memory store below covers CLI
// tools and tests.
type CredentialStore interface {
	Get() (TokenPair, bool)
	Set(pair TokenPair)
	Clear()
}

type MemoryCredentialStore struct {
	mu   sync.RWMutex
	pair TokenPair
	set  bool
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (m *MemoryCredentialStore) Get() (TokenPair, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair, m.set
}

func (m *MemoryCredentialStore) Set(pair TokenPair) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = pair
	m.set = true
}

func (m *MemoryCredentialStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = TokenPair{}
	m.set = false
}
