// Package verify is the public consumer-facing lookup: anyone scanning a QR
// code can resolve a batch number to the batch's public-safe fields. Reads
// only; internal fields (farmer id, purity report, QR payload) stay hidden.
package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ayurchain/db"
	"ayurchain/models"
	"ayurchain/rdx"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const cacheTTL = 10 * time.Minute

// PublicBatchView is the redacted projection served to consumers.
type PublicBatchView struct {
	BatchNumber       string             `json:"batchNumber"`
	HerbName          string             `json:"herbName"`
	HarvestDate       time.Time          `json:"harvestDate"`
	QuantityKg        float64            `json:"quantityKg"`
	MoistureLevel     *float64           `json:"moistureLevel,omitempty"`
	PricePerKg        *float64           `json:"pricePerKg,omitempty"`
	FarmingConditions string             `json:"farmingConditions,omitempty"`
	Images            []string           `json:"images,omitempty"`
	Status            models.BatchStatus `json:"status"`
	BlockchainTxHash  string             `json:"blockchainTxHash,omitempty"`
	FarmerName        string             `json:"farmerName,omitempty"`
	FarmerPhone       string             `json:"farmerPhone,omitempty"`
}

// PublicView projects a batch (and, when resolvable, its farmer's profile)
// onto the consumer-safe field set.
func PublicView(batch models.Batch, farmer *models.Profile) PublicBatchView {
	view := PublicBatchView{
		BatchNumber:       batch.BatchNumber,
		HerbName:          batch.HerbName,
		HarvestDate:       batch.HarvestDate,
		QuantityKg:        batch.QuantityKg,
		MoistureLevel:     batch.MoistureLevel,
		PricePerKg:        batch.PricePerKg,
		FarmingConditions: batch.FarmingConditions,
		Images:            batch.Images,
		Status:            batch.Status,
		BlockchainTxHash:  batch.BlockchainTxHash,
	}
	if farmer != nil {
		view.FarmerName = farmer.FullName
		view.FarmerPhone = farmer.Phone
	}
	return view
}

// VerifyBatch resolves a batch by its exact, case-sensitive batch number.
func VerifyBatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	batchNumber := ps.ByName("batchNumber")
	if batchNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Batch number is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cacheKey := "verify:" + batchNumber
	if cached := rdx.Get(ctx, cacheKey); cached != "" {
		var view PublicBatchView
		if err := json.Unmarshal([]byte(cached), &view); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "batch": view})
			return
		}
	}

	var batch models.Batch
	err := db.BatchesCollection.FindOne(ctx, bson.M{"batchNumber": batchNumber}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Batch not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Verification failed")
		return
	}

	var farmer *models.Profile
	var profile models.Profile
	if err := db.ProfilesCollection.FindOne(ctx, bson.M{"_id": batch.FarmerID}).Decode(&profile); err == nil {
		farmer = &profile
	}

	view := PublicView(batch, farmer)
	if payload, err := json.Marshal(view); err == nil {
		rdx.SetEx(ctx, cacheKey, string(payload), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "batch": view})
}
