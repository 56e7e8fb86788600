package http

import (
	"errors"
	"net/http"

	"tenant-maintenance-assistant/internal/intake"
	pkgErrors "tenant-maintenance-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intake.ErrMissingSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, intake.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, intake.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
