package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
	countFn  func(ctx context.Context) (int64, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) CountUsers(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func TestUserHandler_List_HidesPasswordHash(t *testing.T) {
	svc := &stubUserService{
		listFn: func(_ context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Name: "Ada", Email: "ada@x.com", Role: domain.RoleAdmin, PasswordHash: "$2a$10$secret"},
			}, nil
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/user/getall", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "$2a$10$secret") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &stubUserService{
		getFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/getbyid/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, input ports.UpdateUserInput) (*domain.User, error) {
			if input.ID != "u1" || input.Name != "Ada L." {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: input.ID, Name: input.Name, Email: "ada@x.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/", `{"name":"Ada L."}`)
	c.SetPath("/user/update/:id")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Update_DuplicateEmail(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, _ ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/", `{"email":"taken@x.com"}`)
	c.SetPath("/user/update/:id")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var deleted string
	svc := &stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/delete/:id")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "u1" {
		t.Fatalf("expected delete of u1, got %q", deleted)
	}
}

func TestUserHandler_Count(t *testing.T) {
	svc := &stubUserService{
		countFn: func(_ context.Context) (int64, error) {
			return 42, nil
		},
	}
	h := NewUserHandler(svc)
	e := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/user/count", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Count(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	var body countResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Count != 42 {
		t.Fatalf("expected count 42, got %d", body.Count)
	}
}
