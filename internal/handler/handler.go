package handler

import (
	"cinema_reservation/db"
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"cinema_reservation/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// sendError maps service failures onto the response envelope: validation
// maps as a 400 with the field-keyed messages, typed domain errors through
// model.GetErrorCode, everything else as a plain 500.
func sendError(c *fiber.Ctx, err error) error {
	var validationErrs service.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ResponseError(c, validationErrs, fiber.StatusBadRequest)
	}
	if code := model.GetErrorCode(err); code != 0 {
		return response.ResponseError(c, err.Error(), code)
	}
	if db.IsConnectionNotAcceptingError(err) {
		return response.ResponseError(c, response.ServerError, fiber.StatusServiceUnavailable)
	}
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
