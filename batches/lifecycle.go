package batches

import "ayurchain/models"

// The batch lifecycle:
//
//	pending_approval -> ready_for_sale -> sold
//
// Admin approval moves a batch straight to ready_for_sale (there is no
// intermediate stop at "approved"), and sold is terminal. Batches are never
// rejected or deleted.
var transitions = map[models.BatchStatus]models.BatchStatus{
	models.BatchPendingApproval: models.BatchReadyForSale,
	models.BatchReadyForSale:    models.BatchSold,
}

// CanTransition reports whether a batch in state from may move to state to.
func CanTransition(from, to models.BatchStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// IsTerminal reports whether no further transition exists out of status.
func IsTerminal(status models.BatchStatus) bool {
	_, ok := transitions[status]
	return !ok
}
