package farmers

import (
	"testing"

	"ayurchain/models"
)

func TestCanCreateBatch(t *testing.T) {
	if CanCreateBatch(nil) {
		t.Error("a farmer with no details on file must not create batches")
	}

	details := &models.FarmerDetails{ApprovalStatus: models.ApprovalPending}
	if CanCreateBatch(details) {
		t.Error("a pending farmer must not create batches")
	}

	details.ApprovalStatus = models.ApprovalRejected
	if CanCreateBatch(details) {
		t.Error("a rejected farmer must not create batches")
	}

	details.ApprovalStatus = models.ApprovalApproved
	if !CanCreateBatch(details) {
		t.Error("an approved farmer should be allowed to create batches")
	}

	// Resubmission after rejection re-enters pending and closes the gate
	// again until an admin re-approves.
	details.ApprovalStatus = models.ApprovalPending
	if CanCreateBatch(details) {
		t.Error("a resubmitted (pending) farmer must not create batches")
	}
}
