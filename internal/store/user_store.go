package store

import (
	"sync"
	"time"

	"github.com/Mag-Tataho/heAIthy/internal/models"
)

// UserStore keeps every account in memory, keyed by email. State resets on
// restart. The mutex guards the map itself; concurrent writes to the same
// account still resolve last-write-wins, field by field.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.UserRecord
	now   func() time.Time
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*models.UserRecord),
		now:   time.Now,
	}
}

// Create registers a new account with the default free-tier profile.
// Email matching is exact and case-sensitive.
func (s *UserStore) Create(name, email, password string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return nil, ErrAlreadyExists
	}

	record := &models.UserRecord{
		Email:     email,
		Password:  password,
		Profile:   models.DefaultProfile(name, email),
		UpdatedAt: s.now(),
	}
	s.users[email] = record

	copied := *record
	return &copied, nil
}

// FindByCredentials matches email and plaintext password exactly.
func (s *UserStore) FindByCredentials(email, password string) (*models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[email]
	if !ok || record.Password != password {
		return nil, ErrInvalidCredentials
	}
	copied := *record
	return &copied, nil
}

func (s *UserStore) FindByEmail(email string) (*models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

// MergeProfile applies a shallow patch: fields the patch carries overwrite,
// the rest keep their stored values.
func (s *UserStore) MergeProfile(email string, patch models.ProfilePatch) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&record.Profile)
	record.UpdatedAt = s.now()

	copied := *record
	return &copied, nil
}

// List returns all records in unspecified order.
func (s *UserStore) List() []models.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserRecord, 0, len(s.users))
	for _, record := range s.users {
		out = append(out, *record)
	}
	return out
}
