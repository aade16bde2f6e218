package verify

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ayurchain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleBatch() models.Batch {
	price := 120.0
	moisture := 8.5
	return models.Batch{
		ID:                primitive.NewObjectID(),
		BatchNumber:       "BATCH-2026-0A1B2C3D",
		FarmerID:          primitive.NewObjectID(),
		HerbName:          "Ashwagandha",
		HarvestDate:       time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		QuantityKg:        40,
		MoistureLevel:     &moisture,
		PricePerKg:        &price,
		FarmingConditions: "Organic, rain-fed",
		Images:            []string{"/static/uploads/batches/1.jpg"},
		PurityReportURL:   "/static/uploads/batches/report.pdf",
		Status:            models.BatchReadyForSale,
		QRCodeData:        "BATCH-2026-0A1B2C3D",
		BlockchainTxHash:  "0xabc123",
	}
}

func TestPublicViewCarriesPublicFields(t *testing.T) {
	batch := sampleBatch()
	farmer := &models.Profile{FullName: "Asha Kumari", Phone: "9876500000", Email: "asha@example.com"}

	view := PublicView(batch, farmer)

	if view.BatchNumber != batch.BatchNumber {
		t.Errorf("batch number = %q, want %q", view.BatchNumber, batch.BatchNumber)
	}
	if view.HerbName != "Ashwagandha" || view.QuantityKg != 40 {
		t.Errorf("herb/quantity not carried over: %+v", view)
	}
	if view.PricePerKg == nil || *view.PricePerKg != 120 {
		t.Errorf("price not carried over: %+v", view.PricePerKg)
	}
	if view.Status != models.BatchReadyForSale {
		t.Errorf("status = %q", view.Status)
	}
	if view.BlockchainTxHash != "0xabc123" {
		t.Errorf("blockchain reference not carried over")
	}
	if view.FarmerName != "Asha Kumari" || view.FarmerPhone != "9876500000" {
		t.Errorf("farmer fields not joined: %+v", view)
	}
}

func TestPublicViewRedactsInternalFields(t *testing.T) {
	batch := sampleBatch()
	farmer := &models.Profile{FullName: "Asha Kumari", Email: "asha@example.com"}

	payload, err := json.Marshal(PublicView(batch, farmer))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(payload)

	for _, leaked := range []string{batch.FarmerID.Hex(), batch.ID.Hex(), "report.pdf", "asha@example.com", "qrCodeData"} {
		if strings.Contains(body, leaked) {
			t.Errorf("public view leaks %q: %s", leaked, body)
		}
	}
}

func TestPublicViewWithoutFarmer(t *testing.T) {
	view := PublicView(sampleBatch(), nil)
	if view.FarmerName != "" || view.FarmerPhone != "" {
		t.Errorf("missing farmer should leave farmer fields empty: %+v", view)
	}
}
