package services

import (
	"log"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
)

// EntitlementService owns the payment-status transitions:
// none -> pending (payment submitted) -> approved (redeem or admin approval).
// The upgrade is monotonic; nothing moves an account out of approved.
type EntitlementService struct {
	users    *store.UserStore
	licenses *store.LicenseRegistry
	reviews  *store.ReviewQueue
}

func NewEntitlementService(
	users *store.UserStore,
	licenses *store.LicenseRegistry,
	reviews *store.ReviewQueue,
) *EntitlementService {
	return &EntitlementService{
		users:    users,
		licenses: licenses,
		reviews:  reviews,
	}
}

// SubmitPayment marks the account pending and records the transaction
// reference, overwriting any earlier one. A fresh license code is issued into
// the registry and queued for manual review; the submitter never sees it.
func (s *EntitlementService) SubmitPayment(email, transactionID string) (*models.UserRecord, error) {
	if _, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	}

	pending := models.PaymentPending
	record, err := s.users.MergeProfile(email, models.ProfilePatch{
		PaymentStatus:     &pending,
		LastTransactionID: &transactionID,
	})
	if err != nil {
		return nil, err
	}

	code, err := s.licenses.Issue()
	if err != nil {
		return nil, err
	}
	entry := s.reviews.Add(email, transactionID, code)
	log.Printf("[PAYMENT] %s submitted transaction %s, review entry %s, code issued", email, transactionID, entry.ID)

	return record, nil
}

// RedeemCode unlocks premium if the code is valid. It works from any prior
// status, including none: gifted or promo codes are an independent path.
func (s *EntitlementService) RedeemCode(email, code string) (*models.UserRecord, error) {
	if _, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	}
	if !s.licenses.Redeem(code) {
		return nil, store.ErrInvalidCode
	}

	record, err := s.approve(email)
	if err != nil {
		return nil, err
	}
	log.Printf("[PREMIUM] %s activated with code %s", email, code)
	return record, nil
}

// AdminApprove unlocks premium directly, no code consumed.
func (s *EntitlementService) AdminApprove(email string) (*models.UserRecord, error) {
	record, err := s.approve(email)
	if err != nil {
		return nil, err
	}
	log.Printf("[PREMIUM] %s approved by admin", email)
	return record, nil
}

func (s *EntitlementService) approve(email string) (*models.UserRecord, error) {
	premium := true
	approved := models.PaymentApproved
	record, err := s.users.MergeProfile(email, models.ProfilePatch{
		IsPremium:     &premium,
		PaymentStatus: &approved,
	})
	if err != nil {
		return nil, err
	}
	s.reviews.Resolve(email)
	return record, nil
}
