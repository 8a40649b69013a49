package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"ventureforge/internal/domain"
)

func TestListUsersAdminOnly(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(context.Background(), &domain.User{ID: "user-1", Name: "Ada", Email: "a@b.com", Role: domain.RoleClient}); err != nil {
		t.Fatal(err)
	}
	app := &App{Logger: zerolog.Nop(), Users: users}

	req := withActor(httptest.NewRequest("GET", "/api/users", nil), domain.Actor{ID: "user-1", Role: domain.RoleClient})
	rr := httptest.NewRecorder()
	app.ListUsers(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("client status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = withActor(httptest.NewRequest("GET", "/api/users", nil), domain.Actor{ID: "admin-1", Role: domain.RoleAdmin})
	rr = httptest.NewRecorder()
	app.ListUsers(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want %d", rr.Code, http.StatusOK)
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := jsonDecode(rr, &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("users = %d, want 1", len(env.Data))
	}
}
