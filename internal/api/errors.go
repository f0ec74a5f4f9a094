package api

import (
	"errors"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/go-playground/validator/v10"
)

// getApiError maps service errors onto the wire envelope. Sentinel errors
// may arrive wrapped, so matching goes through errors.Is.
func getApiError(err error) utils.ApiError {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NewNotFound(err.Error())
	case errors.Is(err, models.ErrInvalidUUID),
		errors.Is(err, models.ErrRouteRequired),
		errors.Is(err, models.ErrUnknownWeekday):
		return utils.NewBadRequest(err.Error())
	case errors.Is(err, models.ErrDuplicateCode),
		errors.Is(err, models.ErrResourceInUse):
		return utils.NewConflict(err.Error())
	default:
		return utils.NewInternalServerError(err.Error())
	}
}

// validationDetails flattens validator errors into field→tag pairs for the
// details part of the envelope.
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
