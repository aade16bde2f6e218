package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is one authenticated identity. Role is fixed at registration.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"passwordHash"  json:"-"`
	FullName     string             `bson:"fullName"      json:"fullName"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         Role               `bson:"role"          json:"role"`
	CreatedAt    time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// FarmerDetails is the farmer onboarding record, at most one per farmer.
// A farmer may create batches only while ApprovalStatus is approved.
type FarmerDetails struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"  json:"id"`
	UserID         primitive.ObjectID  `bson:"userId"         json:"userId"`
	FarmName       string              `bson:"farmName"       json:"farmName"`
	FarmLocation   string              `bson:"farmLocation"   json:"farmLocation"`
	Certifications []string            `bson:"certifications,omitempty" json:"certifications,omitempty"`
	LandProofURL   string              `bson:"landProofUrl,omitempty"   json:"landProofUrl,omitempty"`
	ApprovalStatus ApprovalStatus      `bson:"approvalStatus" json:"approvalStatus"`
	ApprovedBy     *primitive.ObjectID `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt"      json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"      json:"updatedAt"`
}

type CompanyDetails struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	UserID         primitive.ObjectID `bson:"userId"         json:"userId"`
	CompanyName    string             `bson:"companyName"    json:"companyName"`
	CompanyAddress string             `bson:"companyAddress" json:"companyAddress"`
	GSTNumber      string             `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"      json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"      json:"updatedAt"`
}

// Batch is one harvested lot. QuantityKg is the lot's total size and is never
// decremented; a purchase retires the whole batch (status sold).
type Batch struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	BatchNumber       string             `bson:"batchNumber"    json:"batchNumber"`
	FarmerID          primitive.ObjectID `bson:"farmerId"       json:"farmerId"`
	HerbName          string             `bson:"herbName"       json:"herbName"`
	HarvestDate       time.Time          `bson:"harvestDate"    json:"harvestDate"`
	QuantityKg        float64            `bson:"quantityKg"     json:"quantityKg"`
	MoistureLevel     *float64           `bson:"moistureLevel,omitempty" json:"moistureLevel,omitempty"`
	PricePerKg        *float64           `bson:"pricePerKg,omitempty"    json:"pricePerKg,omitempty"`
	FarmingConditions string             `bson:"farmingConditions,omitempty" json:"farmingConditions,omitempty"`
	Images            []string           `bson:"images,omitempty"        json:"images,omitempty"`
	PurityReportURL   string             `bson:"purityReportUrl,omitempty" json:"purityReportUrl,omitempty"`
	Status            BatchStatus        `bson:"status"         json:"status"`
	QRCodeData        string             `bson:"qrCodeData,omitempty"    json:"qrCodeData,omitempty"`
	BlockchainTxHash  string             `bson:"blockchainTxHash,omitempty" json:"blockchainTxHash,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"      json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"      json:"updatedAt"`
}

// Purchase is one completed buy. Amounts are stored in rupees; FarmerAmount
// and PlatformAmount always sum to TotalAmount exactly. Immutable once
// written.
type Purchase struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	BatchID          primitive.ObjectID `bson:"batchId"        json:"batchId"`
	CompanyID        primitive.ObjectID `bson:"companyId"      json:"companyId"`
	FarmerID         primitive.ObjectID `bson:"farmerId"       json:"farmerId"`
	QuantityKg       float64            `bson:"quantityKg"     json:"quantityKg"`
	TotalAmount      float64            `bson:"totalAmount"    json:"totalAmount"`
	FarmerAmount     float64            `bson:"farmerAmount"   json:"farmerAmount"`
	PlatformAmount   float64            `bson:"platformAmount" json:"platformAmount"`
	PaymentStatus    string             `bson:"paymentStatus"  json:"paymentStatus"`
	BlockchainTxHash string             `bson:"blockchainTxHash,omitempty" json:"blockchainTxHash,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"      json:"createdAt"`
}

// BatchApproval is the append-only audit log of admin batch decisions.
type BatchApproval struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminID    primitive.ObjectID `bson:"adminId"       json:"adminId"`
	BatchID    primitive.ObjectID `bson:"batchId"       json:"batchId"`
	Status     ApprovalStatus     `bson:"status"        json:"status"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ApprovedAt *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"     json:"createdAt"`
}
