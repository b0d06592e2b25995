package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/todo-system/internal/api/middleware"
	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn      func(ctx context.Context, actor *domain.User, id int64) (*domain.User, error)
	listFn     func(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.User, error)
	updateFn   func(ctx context.Context, actor *domain.User, id int64, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, actor *domain.User, id int64) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) GetByID(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubUserService) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) List(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.User, error) {
	return s.listFn(ctx, actor, skip, limit)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	return s.deleteFn(ctx, actor, id)
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Email != "alice@example.com" || in.Password != "secret123" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 1, FullName: in.FullName, Email: in.Email, PasswordHash: "hashed"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/v1/users",
		`{"full_name":"Alice","email":"alice@example.com","password":"secret123"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "hashed") || strings.Contains(body, "password") {
		t.Fatalf("password material leaked in response: %s", body)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/v1/users",
		`{"full_name":"Alice","email":"alice@example.com","password":"short"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_GetMe(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})
	actor := &domain.User{ID: 7, FullName: "Eve", Email: "eve@example.com", IsActive: true}

	c, rec := newTestContext(http.MethodGet, "/api/v1/users/me", "")
	c.Set(middleware.UserContextKey, actor)

	if err := handler.GetMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 7 || resp.Email != "eve@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_UnauthenticatedContext(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodGet, "/api/v1/users/me", "")

	err := handler.GetMe(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth context, got %v", err)
	}
}

func TestUserHandler_Get_BadID(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})
	actor := &domain.User{ID: 7, IsActive: true}

	c, _ := newTestContext(http.MethodGet, "/api/v1/users/abc", "")
	c.Set(middleware.UserContextKey, actor)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}

func TestUserHandler_PutMe_FullReplacement(t *testing.T) {
	actor := &domain.User{ID: 7, Email: "old@example.com", IsActive: true}
	var got ports.UpdateUserInput
	stub := &stubUserService{
		updateFn: func(_ context.Context, a *domain.User, id int64, in ports.UpdateUserInput) (*domain.User, error) {
			if a.ID != 7 || id != 7 {
				t.Fatalf("expected self-update of 7, got actor=%d id=%d", a.ID, id)
			}
			got = in
			return &domain.User{ID: 7, FullName: *in.FullName, Email: *in.Email}, nil
		},
	}
	handler := NewUserHandler(stub)

	// is_active omitted: the full-replacement form must still send an
	// explicit false downstream.
	c, rec := newTestContext(http.MethodPut, "/api/v1/users/me",
		`{"full_name":"Eve","email":"old@example.com"}`)
	c.Set(middleware.UserContextKey, actor)

	if err := handler.PutMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.IsActive == nil || *got.IsActive {
		t.Fatalf("expected is_active pinned to false, got %+v", got.IsActive)
	}
	if got.Password != nil {
		t.Fatalf("expected no password change, got %+v", got.Password)
	}
}

func TestUserHandler_PatchMe_PartialUpdate(t *testing.T) {
	actor := &domain.User{ID: 7, Email: "old@example.com", IsActive: true}
	var got ports.UpdateUserInput
	stub := &stubUserService{
		updateFn: func(_ context.Context, _ *domain.User, _ int64, in ports.UpdateUserInput) (*domain.User, error) {
			got = in
			return actor, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPatch, "/api/v1/users/me", `{"full_name":"New Name"}`)
	c.Set(middleware.UserContextKey, actor)

	if err := handler.PatchMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.FullName == nil || *got.FullName != "New Name" {
		t.Fatalf("expected full_name set, got %+v", got.FullName)
	}
	if got.Email != nil || got.IsActive != nil || got.IsSuperuser != nil {
		t.Fatalf("absent fields must stay nil, got %+v", got)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	actor := &domain.User{ID: 7, Email: "eve@example.com", IsActive: true}
	stub := &stubUserService{
		deleteFn: func(_ context.Context, _ *domain.User, id int64) (*domain.User, error) {
			if id != 7 {
				t.Fatalf("expected id 7, got %d", id)
			}
			return actor, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/users/7", "")
	c.Set(middleware.UserContextKey, actor)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with deleted record, got %d", rec.Code)
	}
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		query     string
		wantSkip  int64
		wantLimit int64
	}{
		{"", 0, 100},
		{"?skip=5&limit=10", 5, 10},
		{"?skip=-3", 0, 100},
		{"?limit=0", 0, 100},
		{"?limit=500", 0, 100},
	}
	for _, tc := range cases {
		c, _ := newTestContext(http.MethodGet, "/api/v1/users"+tc.query, "")
		skip, limit := pageParams(c)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Fatalf("%q: expected (%d,%d), got (%d,%d)", tc.query, tc.wantSkip, tc.wantLimit, skip, limit)
		}
	}
}
