package db

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProfilesCollection       *mongo.Collection
	FarmerDetailsCollection  *mongo.Collection
	CompanyDetailsCollection *mongo.Collection
	BatchesCollection        *mongo.Collection
	PurchasesCollection      *mongo.Collection
	BatchApprovalsCollection *mongo.Collection

	Client *mongo.Client
)

// Init wires the collection handles. Called once from main after the client
// is connected and pinged.
func Init(client *mongo.Client, dbName string) {
	Client = client
	d := client.Database(dbName)
	ProfilesCollection = d.Collection("profiles")
	FarmerDetailsCollection = d.Collection("farmerdetails")
	CompanyDetailsCollection = d.Collection("companydetails")
	BatchesCollection = d.Collection("batches")
	PurchasesCollection = d.Collection("purchases")
	BatchApprovalsCollection = d.Collection("batchapprovals")
}

func OptionsFindLatest(limit int64) *options.FindOptions {
	opts := options.Find()
	opts.SetSort(map[string]interface{}{"createdAt": -1})
	opts.SetLimit(limit)
	return opts
}
