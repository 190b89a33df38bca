package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rdyansyah/skygate/internal/models"
	"github.com/rdyansyah/skygate/internal/skyapi"
)

// writeError maps the adapter error taxonomy onto HTTP responses so every
// failure path stays distinguishable at the UI layer.
func writeError(c echo.Context, err error) error {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: validation.Message,
			Field:   validation.Field,
			Code:    http.StatusBadRequest,
		})
	}

	var notFound *skyapi.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: notFound.Message,
			Code:    http.StatusNotFound,
		})
	}

	var exhausted *skyapi.ExhaustedCandidatesError
	if errors.As(err, &exhausted) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "candidates_exhausted",
			Message: exhausted.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	var transport *skyapi.TransportError
	if errors.As(err, &transport) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: transport.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
