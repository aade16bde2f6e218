package farmers

import (
	"context"
	"net/http"
	"time"

	"ayurchain/db"
	"ayurchain/models"
	"ayurchain/mq"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CanCreateBatch is the approval gate: a farmer may create batches only with
// an approved details record on file.
func CanCreateBatch(details *models.FarmerDetails) bool {
	return details != nil && details.ApprovalStatus == models.ApprovalApproved
}

func requireAdmin(r *http.Request) error {
	if utils.GetRoleFromContext(r.Context()) != models.RoleAdmin {
		return models.ErrUnauthorized
	}
	return nil
}

// ApproveFarmer sets a pending (or rejected) farmer to approved and stamps
// the approver and timestamp. Calling it on an already-approved farmer is a
// no-op success, so the stamp is not overwritten.
func ApproveFarmer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := requireAdmin(r); err != nil {
		utils.RespondWithWorkflowError(w, err)
		return
	}

	farmerID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid farmer ID")
		return
	}

	adminID, _ := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	now := time.Now()

	filter := bson.M{"_id": farmerID, "approvalStatus": bson.M{"$ne": models.ApprovalApproved}}
	update := bson.M{"$set": bson.M{
		"approvalStatus": models.ApprovalApproved,
		"approvedBy":     adminID,
		"approvedAt":     now,
		"updatedAt":      now,
	}}

	res, err := db.FarmerDetailsCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve farmer")
		return
	}
	if res.MatchedCount == 0 {
		// Either unknown or already approved; approval is idempotent.
		var existing models.FarmerDetails
		err := db.FarmerDetailsCollection.FindOne(context.Background(), bson.M{"_id": farmerID}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			utils.RespondWithWorkflowError(w, models.ErrNotFound)
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve farmer")
			return
		}
	}

	mq.Emit("farmer-approved", mq.Index{EntityType: "farmer", Method: "PATCH", EntityId: farmerID.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "approvalStatus": models.ApprovalApproved})
}

// RejectFarmer sets the farmer's details to rejected. No timestamp is
// stamped; the farmer can resubmit details to re-enter pending.
func RejectFarmer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := requireAdmin(r); err != nil {
		utils.RespondWithWorkflowError(w, err)
		return
	}

	farmerID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid farmer ID")
		return
	}

	update := bson.M{"$set": bson.M{
		"approvalStatus": models.ApprovalRejected,
		"updatedAt":      time.Now(),
	}}

	res, err := db.FarmerDetailsCollection.UpdateOne(context.Background(), bson.M{"_id": farmerID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reject farmer")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithWorkflowError(w, models.ErrNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "approvalStatus": models.ApprovalRejected})
}

// GetPendingFarmers lists pending farmer registrations joined to the
// applicant's profile, newest first.
func GetPendingFarmers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := requireAdmin(r); err != nil {
		utils.RespondWithWorkflowError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"approvalStatus": models.ApprovalPending}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"farmName":       1,
			"farmLocation":   1,
			"certifications": 1,
			"landProofUrl":   1,
			"approvalStatus": 1,
			"createdAt":      1,
			"user.fullName":  1,
			"user.phone":     1,
		}}},
	}

	cursor, err := db.FarmerDetailsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pending farmers")
		return
	}
	defer cursor.Close(ctx)

	var farmers []bson.M
	if err := cursor.All(ctx, &farmers); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode pending farmers")
		return
	}
	if farmers == nil {
		farmers = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "farmers": farmers})
}
