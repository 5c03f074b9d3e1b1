package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Mag-Tataho/heAIthy/internal/models"
)

// LocalStore is the client's durable state: the current profile, the dark
// mode flag, and a mirror of user records the sync gateway falls back to when
// the backend is unreachable. Everything lives in one JSON file.
type LocalStore struct {
	mu   sync.Mutex
	path string
	data localData
}

type localData struct {
	Profile  *models.UserProfile `json:"profile,omitempty"`
	DarkMode bool                `json:"darkMode"`
	Users    []models.UserRecord `json:"users"`
}

func NewLocalStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading local store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing local store: %w", err)
	}
	return s, nil
}

// Profile returns the stored session profile, or nil if none is saved.
func (s *LocalStore) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Profile == nil {
		return nil
	}
	copied := *s.data.Profile
	return &copied
}

func (s *LocalStore) SetProfile(profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Profile = &profile
	return s.persist()
}

func (s *LocalStore) ClearProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Profile = nil
	return s.persist()
}

func (s *LocalStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DarkMode
}

func (s *LocalStore) SetDarkMode(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.DarkMode = enabled
	return s.persist()
}

// Users returns the mirrored records.
func (s *LocalStore) Users() []models.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.UserRecord, len(s.data.Users))
	copy(out, s.data.Users)
	return out
}

// FindUser looks a mirrored record up by email.
func (s *LocalStore) FindUser(email string) (*models.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Users {
		if s.data.Users[i].Email == email {
			copied := s.data.Users[i]
			return &copied, true
		}
	}
	return nil, false
}

// UpsertUser replaces the mirrored record for its email, or appends it,
// stamping UpdatedAt.
func (s *LocalStore) UpsertUser(record models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.UpdatedAt = time.Now()
	for i := range s.data.Users {
		if s.data.Users[i].Email == record.Email {
			s.data.Users[i] = record
			return s.persist()
		}
	}
	s.data.Users = append(s.data.Users, record)
	return s.persist()
}

// persist writes via a temp file and rename so a crash mid-write cannot
// truncate the store. Caller must hold the mutex.
func (s *LocalStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating local store dir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing local store: %w", err)
	}
	return nil
}
