package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ayurchain/db"
	"ayurchain/models"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func callerID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	return id, err == nil
}

func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := db.ProfilesCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "profile": profile})
}

type editProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// EditProfile updates display name and phone. Role and email are immutable.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var req editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Full name is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"fullName":  req.FullName,
		"phone":     req.Phone,
		"updatedAt": time.Now(),
	}}
	if _, err := db.ProfilesCollection.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

type farmerDetailsRequest struct {
	FarmName       string   `json:"farmName"`
	FarmLocation   string   `json:"farmLocation"`
	Certifications []string `json:"certifications,omitempty"`
	LandProofURL   string   `json:"landProofUrl,omitempty"`
}

// SubmitFarmerDetails creates or resubmits the farmer onboarding record.
// Resubmission (including after a rejection) resets the approval state to
// pending and clears the previous approver stamp.
func SubmitFarmerDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleFarmer {
		utils.RespondWithError(w, http.StatusForbidden, "Farmer role required")
		return
	}
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var req farmerDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FarmName == "" || req.FarmLocation == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Farm name and location are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"farmName":       req.FarmName,
			"farmLocation":   req.FarmLocation,
			"certifications": req.Certifications,
			"landProofUrl":   req.LandProofURL,
			"approvalStatus": models.ApprovalPending,
			"updatedAt":      now,
		},
		"$unset": bson.M{"approvedBy": "", "approvedAt": ""},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := db.FarmerDetailsCollection.UpdateOne(ctx, bson.M{"userId": userID}, update, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save farmer details")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "approvalStatus": models.ApprovalPending})
}

func GetFarmerDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var details models.FarmerDetails
	err := db.FarmerDetailsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&details)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "No farmer details on file")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load farmer details")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "details": details})
}

type companyDetailsRequest struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	GSTNumber      string `json:"gstNumber,omitempty"`
}

// SubmitCompanyDetails upserts the purchasing company's record. Companies
// need no approval gate; the record exists for invoicing and display.
func SubmitCompanyDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if utils.GetRoleFromContext(r.Context()) != models.RoleCompany {
		utils.RespondWithError(w, http.StatusForbidden, "Company role required")
		return
	}
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var req companyDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CompanyName == "" || req.CompanyAddress == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Company name and address are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"companyName":    req.CompanyName,
			"companyAddress": req.CompanyAddress,
			"gstNumber":      req.GSTNumber,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := db.CompanyDetailsCollection.UpdateOne(ctx, bson.M{"userId": userID}, update, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save company details")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
