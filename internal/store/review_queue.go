package store

import (
	"sync"
	"time"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/google/uuid"
)

// ReviewQueue is the manual-review boundary: payment verification here is
// human trust, not code.
type ReviewQueue struct {
	mu      sync.Mutex
	entries []models.ReviewEntry
}

func NewReviewQueue() *ReviewQueue {
	return &ReviewQueue{}
}

// Add appends an entry. Repeat submissions from the same user queue again;
// the operator sees every transaction reference.
func (q *ReviewQueue) Add(email, transactionID, licenseCode string) models.ReviewEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := models.ReviewEntry{
		ID:            uuid.NewString(),
		Email:         email,
		TransactionID: transactionID,
		LicenseCode:   licenseCode,
		SubmittedAt:   time.Now(),
	}
	q.entries = append(q.entries, entry)
	return entry
}

// List returns pending entries in submission order.
func (q *ReviewQueue) List() []models.ReviewEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.ReviewEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Resolve drops every pending entry for the given email, once the account is
// approved or a code is redeemed.
func (q *ReviewQueue) Resolve(email string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.entries[:0]
	for _, entry := range q.entries {
		if entry.Email != email {
			kept = append(kept, entry)
		}
	}
	q.entries = kept
}
