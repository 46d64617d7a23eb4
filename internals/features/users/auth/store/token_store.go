// file: internals/features/users/auth/store/token_store.go
package store

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	authModel "markazy_backend/internals/features/users/auth/model"
	helper "markazy_backend/internals/helpers"
)

// TokenStore is the injected blacklist capability used by the auth gate.
// Logout adds the presented token; the gate rejects anything listed.
// The store is explicitly-lifetimed so it can be swapped for a shared
// backend without touching call sites.
type TokenStore interface {
	Blacklist(token string, expiresAt time.Time) error
	IsBlacklisted(token string) (bool, error)
}

/* ===============================
   GORM-backed store
=================================*/

type GormTokenStore struct {
	DB *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{DB: db}
}

func (s *GormTokenStore) Blacklist(token string, expiresAt time.Time) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiresAt,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		// Logging out twice with the same token is fine.
		if helper.IsDuplicateKey(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *GormTokenStore) IsBlacklisted(token string) (bool, error) {
	var existing authModel.TokenBlacklist
	err := s.DB.Where("token = ?", token).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// Prune removes entries whose token already expired; called by the
// cleanup scheduler. Returns how many rows were removed.
func (s *GormTokenStore) Prune(before time.Time) (int64, error) {
	res := s.DB.Where("expired_at < ?", before).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

/* ===============================
   In-memory store (tests, single-node fallback)
=================================*/

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Blacklist(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = expiresAt
	return nil
}

func (s *MemoryTokenStore) IsBlacklisted(token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok, nil
}
