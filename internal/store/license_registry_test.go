package store

import (
	"regexp"
	"testing"
)

func TestIssueMatchesPattern(t *testing.T) {
	r := NewLicenseRegistry(nil)
	pattern := regexp.MustCompile(`^PRO-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

	for i := 0; i < 20; i++ {
		code, err := r.Issue()
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match PRO-XXXX-XXXX", code)
		}
	}
}

func TestIssuedCodeIsSingleUse(t *testing.T) {
	r := NewLicenseRegistry(nil)
	code, err := r.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if !r.Redeem(code) {
		t.Fatal("first redemption should succeed")
	}
	if r.Redeem(code) {
		t.Fatal("second redemption of the same code should fail")
	}
}

func TestDemoCodesAreReusable(t *testing.T) {
	r := NewLicenseRegistry([]string{"HEALTHY-PRO-2024", "ADMIN-TEST"})

	for i := 0; i < 3; i++ {
		if !r.Redeem("HEALTHY-PRO-2024") {
			t.Fatalf("demo code rejected on attempt %d", i+1)
		}
	}
	if !r.Redeem("ADMIN-TEST") {
		t.Fatal("second demo code rejected")
	}
}

func TestRedeemIsCaseSensitive(t *testing.T) {
	r := NewLicenseRegistry([]string{"HEALTHY-PRO-2024"})
	if r.Redeem("healthy-pro-2024") {
		t.Fatal("lowercased code must not redeem")
	}
	if r.Redeem("NOPE") {
		t.Fatal("unknown code must not redeem")
	}
}
