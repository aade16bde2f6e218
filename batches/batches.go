package batches

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ayurchain/db"
	"ayurchain/farmers"
	"ayurchain/models"
	"ayurchain/mq"
	"ayurchain/rdx"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createBatchRequest struct {
	HerbName          string   `json:"herbName"`
	HarvestDate       string   `json:"harvestDate"`
	QuantityKg        float64  `json:"quantityKg"`
	MoistureLevel     *float64 `json:"moistureLevel,omitempty"`
	PricePerKg        *float64 `json:"pricePerKg,omitempty"`
	FarmingConditions string   `json:"farmingConditions,omitempty"`
	Images            []string `json:"images,omitempty"`
	PurityReportURL   string   `json:"purityReportUrl,omitempty"`
}

func (req *createBatchRequest) validate() (time.Time, string) {
	if req.HerbName == "" {
		return time.Time{}, "Herb name is required"
	}
	harvest := utils.ParseDate(req.HarvestDate)
	if harvest == nil {
		return time.Time{}, "Harvest date must be YYYY-MM-DD"
	}
	if req.QuantityKg <= 0 {
		return time.Time{}, "Quantity must be positive"
	}
	if req.MoistureLevel != nil && (*req.MoistureLevel < 0 || *req.MoistureLevel > 100) {
		return time.Time{}, "Moisture level must be a percentage"
	}
	if req.PricePerKg != nil && *req.PricePerKg <= 0 {
		return time.Time{}, "Price per kg must be positive"
	}
	return *harvest, ""
}

// CreateBatch registers a new harvested lot for an approved farmer. Every
// batch starts in pending_approval.
func CreateBatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleFarmer {
		utils.RespondWithError(w, http.StatusForbidden, "Farmer role required")
		return
	}
	farmerID, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var details models.FarmerDetails
	err = db.FarmerDetailsCollection.FindOne(ctx, bson.M{"userId": farmerID}).Decode(&details)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusForbidden, "Complete your farmer profile and get approved first")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load farmer details")
		return
	}
	if !farmers.CanCreateBatch(&details) {
		utils.RespondWithError(w, http.StatusForbidden, "Farmer is not approved to create batches")
		return
	}

	var req createBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	harvest, msg := req.validate()
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	batch := models.Batch{
		ID:                primitive.NewObjectID(),
		BatchNumber:       NewBatchNumber(now),
		FarmerID:          farmerID,
		HerbName:          req.HerbName,
		HarvestDate:       harvest,
		QuantityKg:        req.QuantityKg,
		MoistureLevel:     req.MoistureLevel,
		PricePerKg:        req.PricePerKg,
		FarmingConditions: req.FarmingConditions,
		Images:            req.Images,
		PurityReportURL:   req.PurityReportURL,
		Status:            models.BatchPendingApproval,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := db.BatchesCollection.InsertOne(ctx, batch); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create batch")
		return
	}

	mq.Emit("batch-created", mq.Index{EntityType: "batch", Method: "POST", EntityId: batch.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "batch": batch})
}

// GetMyBatches returns the calling farmer's batches, newest first.
func GetMyBatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	farmerID, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.BatchesCollection.Find(ctx, bson.M{"farmerId": farmerID}, db.OptionsFindLatest(100))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch batches")
		return
	}
	defer cursor.Close(ctx)

	var batches []models.Batch
	if err := cursor.All(ctx, &batches); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode batches")
		return
	}
	if batches == nil {
		batches = []models.Batch{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "batches": batches})
}

// GetPendingBatches lists batches awaiting admin approval with the farmer's
// display name attached.
func GetPendingBatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batches, err := listWithFarmer(ctx, models.BatchPendingApproval)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pending batches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "batches": batches})
}

// GetAvailableBatches is the marketplace view: ready-for-sale batches with
// the farmer's name and phone, newest first.
func GetAvailableBatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batches, err := listWithFarmer(ctx, models.BatchReadyForSale)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch available batches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "batches": batches})
}

func listWithFarmer(ctx context.Context, status models.BatchStatus) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": status}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "farmerId",
			"foreignField": "_id",
			"as":           "farmer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$farmer", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"batchNumber":       1,
			"farmerId":          1,
			"herbName":          1,
			"harvestDate":       1,
			"quantityKg":        1,
			"moistureLevel":     1,
			"pricePerKg":        1,
			"farmingConditions": 1,
			"images":            1,
			"purityReportUrl":   1,
			"status":            1,
			"qrCodeData":        1,
			"createdAt":         1,
			"farmer.fullName":   1,
			"farmer.phone":      1,
		}}},
	}

	cursor, err := db.BatchesCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var batches []bson.M
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, err
	}
	if batches == nil {
		batches = []bson.M{}
	}
	return batches, nil
}

// ApproveBatch moves a pending batch to ready_for_sale and stamps the QR
// payload with the batch number, as a single conditional update so a batch
// already past pending cannot be re-approved. An audit record is appended.
func ApproveBatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
		return
	}

	batchID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid batch ID")
		return
	}
	adminID, _ := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))

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
	if !CanTransition(batch.Status, models.BatchReadyForSale) {
		utils.RespondWithWorkflowError(w, models.ErrNotAvailable)
		return
	}

	now := time.Now()
	filter := bson.M{"_id": batchID, "status": models.BatchPendingApproval}
	update := bson.M{"$set": bson.M{
		"status":     models.BatchReadyForSale,
		"qrCodeData": batch.BatchNumber,
		"updatedAt":  now,
	}}

	res, err := db.BatchesCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve batch")
		return
	}
	if res.ModifiedCount == 0 {
		utils.RespondWithWorkflowError(w, models.ErrNotAvailable)
		return
	}

	audit := models.BatchApproval{
		ID:         primitive.NewObjectID(),
		AdminID:    adminID,
		BatchID:    batchID,
		Status:     models.ApprovalApproved,
		ApprovedAt: &now,
		CreatedAt:  now,
	}
	db.BatchApprovalsCollection.InsertOne(ctx, audit)

	rdx.Del(ctx, "verify:"+batch.BatchNumber)
	mq.Emit("batch-ready-for-sale", mq.Index{EntityType: "batch", Method: "PATCH", EntityId: batchID.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "status": models.BatchReadyForSale, "qrCodeData": batch.BatchNumber})
}
