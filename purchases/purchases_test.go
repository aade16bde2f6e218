package purchases

import (
	"errors"
	"testing"

	"ayurchain/models"
)

func readyBatch() *models.Batch {
	price := 100.0
	return &models.Batch{
		Status:     models.BatchReadyForSale,
		PricePerKg: &price,
		QuantityKg: 50,
	}
}

func TestCheckGuards(t *testing.T) {
	if err := CheckGuards(readyBatch(), 2.5); err != nil {
		t.Errorf("valid purchase rejected: %v", err)
	}

	if err := CheckGuards(nil, 2.5); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("missing batch: got %v, want ErrNotFound", err)
	}

	sold := readyBatch()
	sold.Status = models.BatchSold
	if err := CheckGuards(sold, 2.5); !errors.Is(err, models.ErrNotAvailable) {
		t.Errorf("sold batch: got %v, want ErrNotAvailable", err)
	}

	pending := readyBatch()
	pending.Status = models.BatchPendingApproval
	if err := CheckGuards(pending, 2.5); !errors.Is(err, models.ErrNotAvailable) {
		t.Errorf("pending batch: got %v, want ErrNotAvailable", err)
	}

	unpriced := readyBatch()
	unpriced.PricePerKg = nil
	if err := CheckGuards(unpriced, 2.5); !errors.Is(err, models.ErrMissingPrice) {
		t.Errorf("unpriced batch: got %v, want ErrMissingPrice", err)
	}

	// Quantity bounds: (0, quantity_kg]. The full lot is buyable; a gram
	// over is not.
	if err := CheckGuards(readyBatch(), 0); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := CheckGuards(readyBatch(), -1); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := CheckGuards(readyBatch(), 50.001); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("over-quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := CheckGuards(readyBatch(), 50); err != nil {
		t.Errorf("exact lot size should be accepted: %v", err)
	}
}
