// Package client is a typed API client for the showcase service. It owns the
// browser-equivalent session lifecycle: login stores the token and profile,
// logout clears them, and any protected call answered with 401 drops the
// session back to Anonymous. The client never inspects token expiry itself;
// the server is the sole authority.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 15 * time.Second

var (
	// ErrAnonymous is returned when a protected call is attempted without a
	// stored session.
	ErrAnonymous = errors.New("not authenticated")
	// ErrSessionExpired is returned when the server rejects the stored token.
	// The session has already been cleared when this error is returned.
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidLogin   = errors.New("invalid email or password")
	ErrAccessDenied   = errors.New("access denied")
	ErrNotFound       = errors.New("not found")
)

// Client wraps HTTP interactions with the showcase API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    *Session
}

// Options allows overriding the client's dependencies.
type Options struct {
	HTTPClient *http.Client
}

// New creates a client whose session is restored from store.
func New(baseURL string, store Store, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	session, err := NewSession(store)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: parsed, httpClient: httpClient, session: session}, nil
}

// Session exposes the client's session state.
func (c *Client) Session() *Session {
	return c.session
}

// Project mirrors the server's project payload.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	Area        string    `json:"area,omitempty"`
	GithubLink  string    `json:"github_link,omitempty"`
	LiveLink    string    `json:"live_link,omitempty"`
	TechStack   []string  `json:"tech_stack,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Videos      []string  `json:"videos,omitempty"`
	Views       int64     `json:"views,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectList is one page of the catalog.
type ProjectList struct {
	Data       []Project `json:"data"`
	Pagination struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

// ListFilter carries the browse filters.
type ListFilter struct {
	Type   string
	Area   string
	Search string
	Page   int
	Limit  int
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

// Login authenticates and transitions the session to Authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*UserSummary, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/user/authenticate", loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrInvalidLogin
	case http.StatusForbidden:
		return nil, ErrAccessDenied
	default:
		return nil, unexpectedStatus(resp)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}

	if err := c.session.establish(&Credentials{Token: body.Token, User: body.User}); err != nil {
		return nil, err
	}
	user := body.User
	return &user, nil
}

// Signup creates an account. It does not change the session state; the
// caller still logs in afterwards.
func (c *Client) Signup(ctx context.Context, name, email, password, role string) (*UserSummary, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/user/signup", signupRequest{Name: name, Email: email, Password: password, Role: role}, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, unexpectedStatus(resp)
	}

	var user UserSummary
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode signup response: %w", err)
	}
	return &user, nil
}

// Logout clears the stored token and profile. The token itself cannot be
// revoked server-side; it simply stops being sent.
func (c *Client) Logout() error {
	return c.session.clear()
}

// ListProjects fetches one page of the catalog.
func (c *Client) ListProjects(ctx context.Context, filter ListFilter) (*ProjectList, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Area != "" {
		q.Set("area", filter.Area)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/project/getall"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list ProjectList
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProject fetches a single project.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := c.getJSON(ctx, "/project/get/"+url.PathEscape(id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject adds a project to the catalog.
func (c *Client) CreateProject(ctx context.Context, project Project) (*Project, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/project/add", project, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkProtected(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, unexpectedStatus(resp)
	}

	var created Project
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &created, nil
}

// DeleteProject removes a project. Admin role required.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/project/delete/"+url.PathEscape(id), nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkProtected(resp); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkProtected(resp); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// checkProtected applies the reactive session correction: a 401 from any
// protected endpoint means the stored token is no longer honored, so the
// session drops back to Anonymous before the error is reported.
func (c *Client) checkProtected(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		_ = c.session.clear()
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrAccessDenied
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, auth bool) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, body, auth)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, auth bool) (*http.Response, error) {
	if auth && c.session.State() != StateAuthenticated {
		return nil, ErrAnonymous
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	endpoint := c.baseURL.ResolveReference(ref)

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func unexpectedStatus(resp *http.Response) error {
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
