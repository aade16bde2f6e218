package home

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ayurchain/db"
	"ayurchain/models"
	"ayurchain/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetHomeContent serves the public landing endpoints under /home/:apiRoute.
func GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apiRoute := strings.ToLower(ps.ByName("apiRoute"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		data interface{}
		err  error
	)

	switch apiRoute {
	case "stats":
		data, err = getPlatformStats(ctx)
	case "herbs":
		data, err = getAvailableHerbs(ctx)
	default:
		utils.RespondWithError(w, http.StatusNotFound, "Invalid API route")
		return
	}

	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch data: "+err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, data)
}

func getPlatformStats(ctx context.Context) (utils.M, error) {
	totalBatches, err := db.BatchesCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	readyBatches, err := db.BatchesCollection.CountDocuments(ctx, bson.M{"status": models.BatchReadyForSale})
	if err != nil {
		return nil, err
	}
	soldBatches, err := db.BatchesCollection.CountDocuments(ctx, bson.M{"status": models.BatchSold})
	if err != nil {
		return nil, err
	}
	approvedFarmers, err := db.FarmerDetailsCollection.CountDocuments(ctx, bson.M{"approvalStatus": models.ApprovalApproved})
	if err != nil {
		return nil, err
	}
	purchases, err := db.PurchasesCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return utils.M{
		"totalBatches":    totalBatches,
		"readyForSale":    readyBatches,
		"soldBatches":     soldBatches,
		"approvedFarmers": approvedFarmers,
		"purchases":       purchases,
	}, nil
}

// getAvailableHerbs lists the distinct herb names currently on the market.
func getAvailableHerbs(ctx context.Context) ([]string, error) {
	raw, err := db.BatchesCollection.Distinct(ctx, "herbName", bson.M{"status": models.BatchReadyForSale})
	if err != nil {
		return nil, err
	}
	herbs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			herbs = append(herbs, s)
		}
	}
	return herbs, nil
}
