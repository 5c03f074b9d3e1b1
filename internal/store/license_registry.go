package store

import (
	"crypto/rand"
	"fmt"
	"sync"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// LicenseRegistry holds redemption codes. Issued codes are single-use; demo
// codes (injected at construction, typically from config) never expire and
// may be redeemed repeatedly. Codes are case-sensitive.
type LicenseRegistry struct {
	mu     sync.Mutex
	demo   map[string]struct{}
	issued map[string]struct{}
}

func NewLicenseRegistry(demoCodes []string) *LicenseRegistry {
	demo := make(map[string]struct{}, len(demoCodes))
	for _, code := range demoCodes {
		demo[code] = struct{}{}
	}
	return &LicenseRegistry{
		demo:   demo,
		issued: make(map[string]struct{}),
	}
}

// Issue generates a fresh PRO-XXXX-XXXX code and adds it to the unredeemed
// pool. Collisions with outstanding codes are retried.
func (r *LicenseRegistry) Issue() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		code, err := generateCode()
		if err != nil {
			return "", err
		}
		if _, taken := r.issued[code]; taken {
			continue
		}
		r.issued[code] = struct{}{}
		return code, nil
	}
}

// Redeem consumes the code if it is outstanding, or accepts it without
// consuming if it is a demo code.
func (r *LicenseRegistry) Redeem(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.demo[code]; ok {
		return true
	}
	if _, ok := r.issued[code]; ok {
		delete(r.issued, code)
		return true
	}
	return false
}

func generateCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating license code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return fmt.Sprintf("PRO-%s-%s", buf[:4], buf[4:]), nil
}
