package batches

import (
	"strings"
	"testing"
	"time"

	"ayurchain/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from models.BatchStatus
		to   models.BatchStatus
		want bool
	}{
		{models.BatchPendingApproval, models.BatchReadyForSale, true},
		{models.BatchReadyForSale, models.BatchSold, true},

		// Approval is a single admin action straight to ready_for_sale;
		// nothing stops at the bare approved state.
		{models.BatchPendingApproval, models.BatchApproved, false},
		{models.BatchApproved, models.BatchReadyForSale, false},

		// No skipping ahead, no re-approval, no way out of sold.
		{models.BatchPendingApproval, models.BatchSold, false},
		{models.BatchReadyForSale, models.BatchReadyForSale, false},
		{models.BatchSold, models.BatchReadyForSale, false},
		{models.BatchSold, models.BatchPendingApproval, false},
		{models.BatchSold, models.BatchSold, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(models.BatchPendingApproval) {
		t.Error("pending_approval should not be terminal")
	}
	if IsTerminal(models.BatchReadyForSale) {
		t.Error("ready_for_sale should not be terminal")
	}
	if !IsTerminal(models.BatchSold) {
		t.Error("sold should be terminal")
	}
}

func TestNewBatchNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	n := NewBatchNumber(now)
	if !strings.HasPrefix(n, "BATCH-2026-") {
		t.Errorf("batch number %q missing BATCH-2026- prefix", n)
	}
	if len(n) != len("BATCH-2026-")+8 {
		t.Errorf("batch number %q has unexpected length", n)
	}
	if n != strings.ToUpper(n) {
		t.Errorf("batch number %q should be upper case", n)
	}

	if m := NewBatchNumber(now); m == n {
		t.Errorf("two generated batch numbers collided: %q", n)
	}
}
