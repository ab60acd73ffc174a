package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// State describes the session as the client sees it. The server holds no
// session table; these states only track whether a token is stored locally.
type State string

const (
	StateAnonymous     State = "Anonymous"
	StateAuthenticated State = "Authenticated"
)

// UserSummary is the non-sensitive profile returned on login.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credentials couples the bearer token with the user profile. The two are
// always stored and cleared together.
type Credentials struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// Store persists credentials between runs.
type Store interface {
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	Clear() error
}

// FileStore keeps credentials in a single JSON file, the CLI analog of the
// browser's local storage.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Save(creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Session tracks the client-side authentication state. It starts Anonymous
// when the store is empty and Authenticated when a token was persisted by a
// previous run.
type Session struct {
	mu    sync.Mutex
	store Store
	creds *Credentials
}

func NewSession(store Store) (*Session, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, creds: creds}, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return StateAnonymous
	}
	return StateAuthenticated
}

// Token returns the stored bearer token, or "" when Anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.Token
}

// User returns the stored profile, or nil when Anonymous.
func (s *Session) User() *UserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil
	}
	u := s.creds.User
	return &u
}

// establish transitions Anonymous → Authenticated, persisting token and
// profile together.
func (s *Session) establish(creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(creds); err != nil {
		return err
	}
	s.creds = creds
	return nil
}

// clear transitions to Anonymous, removing token and profile together.
func (s *Session) clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return s.store.Clear()
}
