package models

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"farmer", "admin", "company", "consumer"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) failed: %v", s, err)
		}
		if string(role) != s {
			t.Errorf("ParseRole(%q) = %q", s, role)
		}
	}

	for _, s := range []string{"", "Farmer", "superadmin", "FARMER "} {
		if _, err := ParseRole(s); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseRole(%q): got %v, want ErrValidation", s, err)
		}
	}
}

func TestParseApprovalStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		if _, err := ParseApprovalStatus(s); err != nil {
			t.Errorf("ParseApprovalStatus(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseApprovalStatus("denied"); !errors.Is(err, ErrValidation) {
		t.Errorf("out-of-enum approval status should be rejected, got %v", err)
	}
}

func TestParseBatchStatus(t *testing.T) {
	for _, s := range []string{"pending_approval", "approved", "ready_for_sale", "sold"} {
		if _, err := ParseBatchStatus(s); err != nil {
			t.Errorf("ParseBatchStatus(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "SOLD", "ready", "archived"} {
		if _, err := ParseBatchStatus(s); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseBatchStatus(%q): got %v, want ErrValidation", s, err)
		}
	}
}
