package handlers

import (
	"net/http"
	"testing"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type stubProfileMerger struct {
	result    *models.UserRecord
	err       error
	lastEmail string
	lastPatch models.ProfilePatch
}

func (s *stubProfileMerger) MergeProfile(email string, patch models.ProfilePatch) (*models.UserRecord, error) {
	s.lastEmail = email
	s.lastPatch = patch
	return s.result, s.err
}

func TestSyncAppliesPartialPatch(t *testing.T) {
	merger := &stubProfileMerger{result: &models.UserRecord{Email: "ada@x.com"}}
	handler := NewUserHandler(merger)

	app := fiber.New()
	app.Post("/api/user/sync", handler.Sync)

	resp := postJSON(t, app, "/api/user/sync", `{"email":"ada@x.com","profile":{"weight":66.5,"allergies":"peanuts"}}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if merger.lastEmail != "ada@x.com" {
		t.Fatalf("expected email to reach store, got %q", merger.lastEmail)
	}
	if merger.lastPatch.WeightKG == nil || *merger.lastPatch.WeightKG != 66.5 {
		t.Fatalf("expected weight in patch, got %+v", merger.lastPatch.WeightKG)
	}
	if merger.lastPatch.Allergies == nil || *merger.lastPatch.Allergies != "peanuts" {
		t.Fatal("expected allergies in patch")
	}
	if merger.lastPatch.Name != nil {
		t.Fatal("absent fields must stay nil in the patch")
	}
}

func TestSyncUnknownUserIs404(t *testing.T) {
	handler := NewUserHandler(&stubProfileMerger{err: store.ErrNotFound})

	app := fiber.New()
	app.Post("/api/user/sync", handler.Sync)

	resp := postJSON(t, app, "/api/user/sync", `{"email":"ghost@x.com","profile":{}}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
