package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (string, *domain.User, error)
	signupFn       func(ctx context.Context, name, email, password, role string) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	return s.signupFn(ctx, name, email, password, role)
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, c
}

func newAuthTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "root@x.com" || password != "Adm1n!" {
				t.Fatalf("unexpected credentials: %s/%s", email, password)
			}
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/authenticate", `{"email":"root@x.com","password":"Adm1n!"}`)
	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Token != "signed-token" || body.User == nil || body.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not echo password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Authenticate_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/authenticate", `{"email":"ghost@x.com","password":"nope"}`)
	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Authenticate_AccessDenied(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrAccessDenied
		},
	}
	h := NewAuthHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/authenticate", `{"email":"ada@x.com","password":"Secret1!"}`)
	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthHandler_Authenticate_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			t.Fatal("service must not be called on invalid payload")
			return "", nil, nil
		},
	})
	e := newAuthTestServer()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing password", `{"email":"a@x.com"}`},
		{"bad email", `{"email":"not-an-email","password":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, c := postJSON(t, e, "/user/authenticate", tc.body)
			if err := h.Authenticate(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(_ context.Context, name, email, password, role string) (*domain.User, error) {
			if role != "" {
				t.Fatalf("expected empty role passthrough, got %q", role)
			}
			return &domain.User{ID: "u2", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/signup", `{"name":"Ada","email":"ada@x.com","password":"Secret1!"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if strings.Contains(rec.Body.String(), "Secret1!") {
		t.Fatalf("response must not echo the password: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(_ context.Context, _, _, _, _ string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewAuthHandler(svc)
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/signup", `{"name":"Ada","email":"ada@x.com","password":"Secret1!"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error != "email already registered" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestAuthHandler_Signup_RejectsUnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(_ context.Context, _, _, _, _ string) (*domain.User, error) {
			t.Fatal("service must not be called on invalid role")
			return nil, nil
		},
	})
	e := newAuthTestServer()

	rec, c := postJSON(t, e, "/user/signup", `{"name":"Ada","email":"ada@x.com","password":"x","role":"owner"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
