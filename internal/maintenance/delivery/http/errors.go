package http

import (
	"errors"
	"net/http"

	"tenant-maintenance-assistant/internal/dispatch"
	"tenant-maintenance-assistant/internal/maintenance"
	pkgErrors "tenant-maintenance-assistant/pkg/errors"
)

var errMissingTenant = errors.New("tenant_id is required")

// triageStatus maps pipeline errors to the triage endpoint's status and message.
func (h *handler) triageStatus(err error) (int, string) {
	switch {
	case errors.Is(err, maintenance.ErrInvalidDescription), errors.Is(err, errMissingTenant):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, maintenance.ErrClassificationUnavailable):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, dispatch.ErrRegistryUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, maintenance.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errMissingTenant):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
