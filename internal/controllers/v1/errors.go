package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/storage"
)

var (
	errCleanupConfirmation = errors.New("the query parameter 'confirm' needs to be set to 'yes-please-delete-everything'")
	errPurchasedRequired   = errors.New("only purchased items can be cleared, set the query parameter 'purchased' to 'true'")
)

type httpError = httputil.HTTPError

// status returns the HTTP status for err.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, storage.ErrUnavailable):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
