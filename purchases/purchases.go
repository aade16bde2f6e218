package purchases

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ayurchain/db"
	"ayurchain/models"
	"ayurchain/mq"
	"ayurchain/rdx"
	"ayurchain/settlement"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type purchaseRequest struct {
	BatchID    string  `json:"batchId"`
	QuantityKg float64 `json:"quantityKg"`
}

// CheckGuards validates a proposed purchase against the batch: it must be
// ready for sale, priced, and the quantity must fall in (0, quantity_kg].
// The store-side conditional update re-checks availability; this is the
// fail-fast pass before any write.
func CheckGuards(batch *models.Batch, quantityKg float64) error {
	if batch == nil {
		return models.ErrNotFound
	}
	if batch.Status != models.BatchReadyForSale {
		return models.ErrNotAvailable
	}
	if batch.PricePerKg == nil || *batch.PricePerKg <= 0 {
		return models.ErrMissingPrice
	}
	if quantityKg <= 0 || quantityKg > batch.QuantityKg {
		return models.ErrInvalidQuantity
	}
	return nil
}

// RecordPurchase settles a company's buy of a ready-for-sale batch. The
// status flip to sold is one conditional update, so of two concurrent buyers
// exactly one wins and the other sees the batch as no longer available. Any
// accepted purchase retires the whole batch; quantity is validated against
// the lot size but never decremented.
func RecordPurchase(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleCompany {
		utils.RespondWithError(w, http.StatusForbidden, "Company role required")
		return
	}
	companyID, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	batchID, err := primitive.ObjectIDFromHex(req.BatchID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid batch ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var batch models.Batch
	err = db.BatchesCollection.FindOne(ctx, bson.M{"_id": batchID}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithWorkflowError(w, models.ErrNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load batch")
		return
	}

	if err := CheckGuards(&batch, req.QuantityKg); err != nil {
		utils.RespondWithWorkflowError(w, err)
		return
	}

	split, err := settlement.Compute(*batch.PricePerKg, req.QuantityKg)
	if err != nil {
		utils.RespondWithWorkflowError(w, err)
		return
	}

	// Guard check and status flip in one conditional write; losing a race
	// here means another purchase already took the batch.
	now := time.Now()
	res, err := db.BatchesCollection.UpdateOne(ctx,
		bson.M{"_id": batchID, "status": models.BatchReadyForSale},
		bson.M{"$set": bson.M{"status": models.BatchSold, "updatedAt": now}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete purchase")
		return
	}
	if res.ModifiedCount == 0 {
		// The other concurrent buyer won the flip.
		utils.RespondWithWorkflowError(w, models.ErrNotAvailable)
		return
	}

	purchase := models.Purchase{
		ID:             primitive.NewObjectID(),
		BatchID:        batchID,
		CompanyID:      companyID,
		FarmerID:       batch.FarmerID,
		QuantityKg:     req.QuantityKg,
		TotalAmount:    split.Total.InexactFloat64(),
		FarmerAmount:   split.FarmerAmount.InexactFloat64(),
		PlatformAmount: split.PlatformAmount.InexactFloat64(),
		PaymentStatus:  "completed",
		CreatedAt:      now,
	}

	if _, err := db.PurchasesCollection.InsertOne(ctx, purchase); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Purchase settled but failed to record; contact support")
		return
	}

	rdx.Del(ctx, "verify:"+batch.BatchNumber)
	mq.Emit("purchase-settled", mq.Index{EntityType: "purchase", Method: "POST", EntityId: purchase.ID.Hex(), ItemId: batchID.Hex(), ItemType: "batch"})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "purchase": purchase})
}

// GetMyPurchases returns the calling company's purchase history with batch
// and farmer details attached.
func GetMyPurchases(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	listPurchases(w, bson.M{"companyId": companyID})
}

// GetAllPurchases is the admin revenue view across all companies.
func GetAllPurchases(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
		return
	}

	listPurchases(w, bson.M{})
}

func listPurchases(w http.ResponseWriter, match bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "batches",
			"localField":   "batchId",
			"foreignField": "_id",
			"as":           "batch",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$batch", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "farmerId",
			"foreignField": "_id",
			"as":           "farmer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$farmer", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "companyId",
			"foreignField": "_id",
			"as":           "company",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$company", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"quantityKg":        1,
			"totalAmount":       1,
			"farmerAmount":      1,
			"platformAmount":    1,
			"paymentStatus":     1,
			"createdAt":         1,
			"batch.herbName":    1,
			"batch.batchNumber": 1,
			"batch.harvestDate": 1,
			"farmer.fullName":   1,
			"company.fullName":  1,
		}}},
	}

	cursor, err := db.PurchasesCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}
	defer cursor.Close(ctx)

	var purchases []bson.M
	if err := cursor.All(ctx, &purchases); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode purchases")
		return
	}
	if purchases == nil {
		purchases = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "purchases": purchases})
}
