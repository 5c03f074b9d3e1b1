package services

import (
	"errors"
	"testing"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
)

func newEntitlementFixture(t *testing.T) (*EntitlementService, *store.UserStore, *store.LicenseRegistry, *store.ReviewQueue) {
	t.Helper()
	users := store.NewUserStore()
	licenses := store.NewLicenseRegistry([]string{"HEALTHY-PRO-2024", "ADMIN-TEST"})
	reviews := store.NewReviewQueue()
	if _, err := users.Create("Ada", "ada@x.com", "pw"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewEntitlementService(users, licenses, reviews), users, licenses, reviews
}

func TestSubmitPaymentMovesToPending(t *testing.T) {
	svc, _, _, reviews := newEntitlementFixture(t)

	record, err := svc.SubmitPayment("ada@x.com", "TX123")
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	if record.Profile.PaymentStatus != models.PaymentPending {
		t.Fatalf("expected pending, got %q", record.Profile.PaymentStatus)
	}
	if record.Profile.LastTransactionID != "TX123" {
		t.Fatalf("expected TX123, got %q", record.Profile.LastTransactionID)
	}
	if record.Profile.IsPremium {
		t.Fatal("submit must not grant premium")
	}

	entries := reviews.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 review entry, got %d", len(entries))
	}
	if entries[0].LicenseCode == "" {
		t.Fatal("review entry should carry the issued code")
	}
}

func TestSubmitPaymentIsIdempotentOnStatus(t *testing.T) {
	svc, _, _, _ := newEntitlementFixture(t)

	if _, err := svc.SubmitPayment("ada@x.com", "TX1"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	record, err := svc.SubmitPayment("ada@x.com", "TX2")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if record.Profile.PaymentStatus != models.PaymentPending {
		t.Fatalf("expected pending after resubmit, got %q", record.Profile.PaymentStatus)
	}
	if record.Profile.LastTransactionID != "TX2" {
		t.Fatalf("expected latest transaction id TX2, got %q", record.Profile.LastTransactionID)
	}
}

func TestSubmitPaymentUnknownUser(t *testing.T) {
	svc, _, _, _ := newEntitlementFixture(t)
	if _, err := svc.SubmitPayment("ghost@x.com", "TX"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedeemIssuedCodeOnceAcrossUsers(t *testing.T) {
	svc, users, _, reviews := newEntitlementFixture(t)
	if _, err := users.Create("Bob", "bob@x.com", "pw"); err != nil {
		t.Fatalf("seed second user: %v", err)
	}
	if _, err := svc.SubmitPayment("ada@x.com", "TX123"); err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	code := reviews.List()[0].LicenseCode

	record, err := svc.RedeemCode("ada@x.com", code)
	if err != nil {
		t.Fatalf("RedeemCode: %v", err)
	}
	if !record.Profile.IsPremium || record.Profile.PaymentStatus != models.PaymentApproved {
		t.Fatalf("expected premium approved, got %+v", record.Profile)
	}
	if len(reviews.List()) != 0 {
		t.Fatal("redeeming should resolve the pending review entry")
	}

	// Same code again, even for a different user, is spent.
	if _, err := svc.RedeemCode("bob@x.com", code); !errors.Is(err, store.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode on reuse, got %v", err)
	}
}

func TestRedeemWorksWithoutPriorPayment(t *testing.T) {
	svc, _, _, _ := newEntitlementFixture(t)

	record, err := svc.RedeemCode("ada@x.com", "HEALTHY-PRO-2024")
	if err != nil {
		t.Fatalf("RedeemCode: %v", err)
	}
	if !record.Profile.IsPremium || record.Profile.PaymentStatus != models.PaymentApproved {
		t.Fatalf("expected premium from status none, got %+v", record.Profile)
	}
}

func TestRedeemInvalidCode(t *testing.T) {
	svc, _, _, _ := newEntitlementFixture(t)
	if _, err := svc.RedeemCode("ada@x.com", "BOGUS"); !errors.Is(err, store.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestAdminApproveUnconditional(t *testing.T) {
	svc, _, _, reviews := newEntitlementFixture(t)

	// From none.
	record, err := svc.AdminApprove("ada@x.com")
	if err != nil {
		t.Fatalf("AdminApprove: %v", err)
	}
	if !record.Profile.IsPremium || record.Profile.PaymentStatus != models.PaymentApproved {
		t.Fatalf("expected approved premium, got %+v", record.Profile)
	}

	// From pending, and the queue drains.
	if _, err := svc.SubmitPayment("ada@x.com", "TX9"); err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	if _, err := svc.AdminApprove("ada@x.com"); err != nil {
		t.Fatalf("AdminApprove from pending: %v", err)
	}
	if len(reviews.List()) != 0 {
		t.Fatal("approval should resolve pending review entries")
	}

	if _, err := svc.AdminApprove("ghost@x.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
