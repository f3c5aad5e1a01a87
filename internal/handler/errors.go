package handler

import (
	"errors"
	"net/http"

	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/utils"
)

// writeDomainError maps domain errors onto HTTP statuses. Validation and
// policy failures are surfaced verbatim; conflicts tell the caller to retry
// the whole operation.
func writeDomainError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		utils.WriteValidationError(w, validation.Fields)
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, domain.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, domain.ErrConflict):
		utils.WriteError(w, http.StatusConflict, "conflict", err)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		utils.WriteError(w, http.StatusConflict, "already exists", err)
	case isNotFound(err):
		utils.WriteError(w, http.StatusNotFound, "not found", err)
	default:
		utils.WriteError(w, http.StatusInternalServerError, "internal error", err)
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		domain.ErrArtistNotFound,
		domain.ErrGenreNotFound,
		domain.ErrTrackNotFound,
		domain.ErrRatingNotFound,
		domain.ErrStreamRecordNotFound,
		domain.ErrNewsNotFound,
		domain.ErrUserNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
