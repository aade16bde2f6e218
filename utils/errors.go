package utils

import (
	"errors"
	"net/http"

	"ayurchain/models"
)

// RespondWithWorkflowError maps the workflow error taxonomy onto HTTP
// statuses. Anything outside the taxonomy is treated as a store failure.
func RespondWithWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrNotAvailable):
		RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrMissingPrice):
		RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrInvalidQuantity), errors.Is(err, models.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		RespondWithError(w, http.StatusInternalServerError, "Internal error")
	}
}
