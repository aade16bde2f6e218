package models

import "fmt"

// Role is the closed set of principal roles. Assigned once at registration,
// never mutated afterwards.
type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleAdmin    Role = "admin"
	RoleCompany  Role = "company"
	RoleConsumer Role = "consumer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleAdmin, RoleCompany, RoleConsumer:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// ApprovalStatus is the farmer onboarding decision state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown approval status %q", ErrValidation, s)
}

// BatchStatus is the batch lifecycle state. "approved" exists in the enum for
// display compatibility but no flow ever parks a batch there: the admin
// approval action moves pending_approval straight to ready_for_sale.
type BatchStatus string

const (
	BatchPendingApproval BatchStatus = "pending_approval"
	BatchApproved        BatchStatus = "approved"
	BatchReadyForSale    BatchStatus = "ready_for_sale"
	BatchSold            BatchStatus = "sold"
)

func ParseBatchStatus(s string) (BatchStatus, error) {
	switch BatchStatus(s) {
	case BatchPendingApproval, BatchApproved, BatchReadyForSale, BatchSold:
		return BatchStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown batch status %q", ErrValidation, s)
}
