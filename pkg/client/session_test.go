package client

import (
	"os"
	"path/filepath"
	"testing"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "showcase", "credentials.json")
}

func TestSession_StartsAnonymous(t *testing.T) {
	session, err := NewSession(NewFileStore(storePath(t)))
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}
	if session.State() != StateAnonymous {
		t.Fatalf("expected Anonymous, got %s", session.State())
	}
	if session.Token() != "" || session.User() != nil {
		t.Fatalf("anonymous session must hold no credentials")
	}
}

func TestSession_EstablishAndClear(t *testing.T) {
	path := storePath(t)
	session, err := NewSession(NewFileStore(path))
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}

	creds := &Credentials{
		Token: "tok-1",
		User:  UserSummary{ID: "u1", Name: "Root", Email: "root@x.com", Role: "admin"},
	}
	if err := session.establish(creds); err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if session.State() != StateAuthenticated {
		t.Fatalf("expected Authenticated, got %s", session.State())
	}
	if session.Token() != "tok-1" || session.User().Role != "admin" {
		t.Fatalf("credentials not held: token=%q user=%+v", session.Token(), session.User())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("credentials not persisted: %v", err)
	}

	if err := session.clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if session.State() != StateAnonymous {
		t.Fatalf("expected Anonymous after clear, got %s", session.State())
	}
	if session.Token() != "" || session.User() != nil {
		t.Fatalf("token and profile must be dropped together")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("credentials file must be removed, stat err=%v", err)
	}
}

func TestSession_RestoresAcrossRuns(t *testing.T) {
	path := storePath(t)

	first, err := NewSession(NewFileStore(path))
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}
	if err := first.establish(&Credentials{Token: "tok-1", User: UserSummary{ID: "u1"}}); err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	second, err := NewSession(NewFileStore(path))
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}
	if second.State() != StateAuthenticated || second.Token() != "tok-1" {
		t.Fatalf("session not restored: state=%s token=%q", second.State(), second.Token())
	}
}

func TestFileStore_EmptyTokenReadsAsNoSession(t *testing.T) {
	path := storePath(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"token":"","user":{"id":"u1"}}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFileStore(path)
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds != nil {
		t.Fatalf("expected nil credentials for empty token, got %+v", creds)
	}
}
