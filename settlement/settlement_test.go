package settlement

import (
	"errors"
	"math"
	"testing"

	"ayurchain/models"
)

func TestComputeConcreteScenario(t *testing.T) {
	// 2.5 kg at 100/kg: 250 total, 200 to the farmer, 50 platform fee.
	s, err := Compute(100, 2.5)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got := s.Total.InexactFloat64(); got != 250 {
		t.Errorf("total = %v, want 250", got)
	}
	if got := s.FarmerAmount.InexactFloat64(); got != 200 {
		t.Errorf("farmer amount = %v, want 200", got)
	}
	if got := s.PlatformAmount.InexactFloat64(); got != 50 {
		t.Errorf("platform amount = %v, want 50", got)
	}
}

func TestComputeSumInvariant(t *testing.T) {
	cases := []struct {
		price float64
		qty   float64
	}{
		{100, 2.5},
		{33.33, 1.5},
		{0.01, 1},
		{0.03, 1},
		{19.99, 0.7},
		{249.5, 12.25},
		{1234.56, 0.333},
		{7, 3},
	}

	for _, c := range cases {
		s, err := Compute(c.price, c.qty)
		if err != nil {
			t.Fatalf("Compute(%v, %v) failed: %v", c.price, c.qty, err)
		}

		// The two shares must reassemble the total exactly.
		if !s.FarmerAmount.Add(s.PlatformAmount).Equal(s.Total) {
			t.Errorf("Compute(%v, %v): %s + %s != %s",
				c.price, c.qty, s.FarmerAmount, s.PlatformAmount, s.Total)
		}

		// Farmer share is 80% within one paisa; the residual lands on the
		// farmer side, never the platform's.
		want := s.Total.InexactFloat64() * 0.8
		if diff := math.Abs(s.FarmerAmount.InexactFloat64() - want); diff > 0.01 {
			t.Errorf("Compute(%v, %v): farmer %s deviates from 80%% by %v",
				c.price, c.qty, s.FarmerAmount, diff)
		}
		if s.FarmerAmount.InexactFloat64() < want-1e-9 {
			t.Errorf("Compute(%v, %v): residual went to platform", c.price, c.qty)
		}
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	if _, err := Compute(0, 2); !errors.Is(err, models.ErrMissingPrice) {
		t.Errorf("price 0: got %v, want ErrMissingPrice", err)
	}
	if _, err := Compute(-5, 2); !errors.Is(err, models.ErrMissingPrice) {
		t.Errorf("negative price: got %v, want ErrMissingPrice", err)
	}
	if _, err := Compute(100, 0); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("quantity 0: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := Compute(100, -1); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}
}
