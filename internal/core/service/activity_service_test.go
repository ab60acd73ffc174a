package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
)

type stubActivityRepo struct {
	entries []*domain.Activity
	err     error
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, a)
	return nil
}

func (r *stubActivityRepo) ListByProject(_ context.Context, projectID string, limit int) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].ProjectID == projectID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func TestActivityService_ProcessAndTrail(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	now := time.Now().UTC()
	inputs := []ports.ActivityInput{
		{ProjectID: "p1", Action: domain.ActionProjectCreated, ActorID: "u1", Timestamp: now},
		{ProjectID: "p2", Action: domain.ActionProjectCreated, ActorID: "u1", Timestamp: now},
		{ProjectID: "p1", Action: domain.ActionProjectUpdated, ActorID: "u2", Timestamp: now.Add(time.Second)},
	}
	for _, in := range inputs {
		if err := svc.Process(context.Background(), in); err != nil {
			t.Fatalf("process failed: %v", err)
		}
	}

	trail, err := svc.Trail(context.Background(), "p1")
	if err != nil {
		t.Fatalf("trail failed: %v", err)
	}
	if len(trail) != 2 {
		t.Fatalf("expected 2 entries for p1, got %d", len(trail))
	}
	if trail[0].Action != domain.ActionProjectUpdated {
		t.Fatalf("expected newest entry first, got %s", trail[0].Action)
	}
}

func TestActivityService_ProcessWrapsError(t *testing.T) {
	cause := errors.New("write concern failed")
	svc := NewActivityService(&stubActivityRepo{err: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ActivityInput{ProjectID: "p1", Action: domain.ActionProjectDeleted})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
