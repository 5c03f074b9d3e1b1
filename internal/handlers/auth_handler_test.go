package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type stubAccountStore struct {
	createResult *models.UserRecord
	createErr    error
	findResult   *models.UserRecord
	findErr      error
	lastName     string
	lastEmail    string
	lastPassword string
}

func (s *stubAccountStore) Create(name, email, password string) (*models.UserRecord, error) {
	s.lastName = name
	s.lastEmail = email
	s.lastPassword = password
	return s.createResult, s.createErr
}

func (s *stubAccountStore) FindByCredentials(email, password string) (*models.UserRecord, error) {
	s.lastEmail = email
	s.lastPassword = password
	return s.findResult, s.findErr
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeUser(t *testing.T, resp *http.Response) models.UserProfile {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		User models.UserProfile `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.User
}

func TestSignupReturnsFreshProfile(t *testing.T) {
	record := &models.UserRecord{
		Email:   "ada@x.com",
		Profile: models.DefaultProfile("Ada", "ada@x.com"),
	}
	users := &stubAccountStore{createResult: record}
	handler := NewAuthHandler(users, "admin@admin.com", "admin123")

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	resp := postJSON(t, app, "/api/auth/signup", `{"name":"Ada","email":"ada@x.com","password":"pw"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	profile := decodeUser(t, resp)
	if profile.IsPremium || profile.PaymentStatus != models.PaymentNone {
		t.Fatalf("expected free-tier defaults, got %+v", profile)
	}
	if users.lastName != "Ada" || users.lastEmail != "ada@x.com" || users.lastPassword != "pw" {
		t.Fatalf("store received wrong arguments: %+v", users)
	}
}

func TestSignupDuplicateEmailIs400(t *testing.T) {
	users := &stubAccountStore{createErr: store.ErrAlreadyExists}
	handler := NewAuthHandler(users, "admin@admin.com", "admin123")

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	resp := postJSON(t, app, "/api/auth/signup", `{"name":"Ada","email":"ada@x.com","password":"pw"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginInvalidCredentialsIs401(t *testing.T) {
	users := &stubAccountStore{findErr: store.ErrInvalidCredentials}
	handler := NewAuthHandler(users, "admin@admin.com", "admin123")

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	resp := postJSON(t, app, "/api/auth/login", `{"email":"ada@x.com","password":"wrong"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginAdminBypassesStore(t *testing.T) {
	users := &stubAccountStore{findErr: store.ErrInvalidCredentials}
	handler := NewAuthHandler(users, "admin@admin.com", "admin123")

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	resp := postJSON(t, app, "/api/auth/login", `{"email":"admin@admin.com","password":"admin123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	profile := decodeUser(t, resp)
	if !profile.IsAdmin || profile.Name != "Admin" {
		t.Fatalf("expected admin session, got %+v", profile)
	}
	if users.lastEmail != "" {
		t.Fatal("admin login must not touch the user store")
	}
}
