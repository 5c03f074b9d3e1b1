package models

import "time"

// ReviewEntry is one submitted payment waiting for a human operator. The
// operator reads the issued code off this queue and emails it to the payer;
// the code is never returned to the submitter directly.
type ReviewEntry struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	LicenseCode   string    `json:"licenseCode"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
