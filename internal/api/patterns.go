package api

import (
	"net/http"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/aerodesk/skypatterns/internal/validator"
)

// CreatePatternHandler serves POST /v1/flight-patterns.
func CreatePatternHandler(service ports.PatternService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FlightPatternRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid flight pattern", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		pattern, err := service.CreatePattern(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, pattern)
	}
}

// GetPatternHandler serves GET /v1/flight-patterns/{id}; the response is
// enriched with the pattern's next departure relative to now.
func GetPatternHandler(service ports.PatternService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pattern, err := service.GetPattern(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, pattern)
	}
}

// UpdatePatternHandler serves PUT /v1/flight-patterns/{id}.
func UpdatePatternHandler(service ports.PatternService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FlightPatternRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid flight pattern", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		pattern, err := service.UpdatePattern(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, pattern)
	}
}

// DeletePatternHandler serves DELETE /v1/flight-patterns/{id}.
func DeletePatternHandler(service ports.PatternService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeletePattern(r.Context(), r.PathValue("id")); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusNoContent, nil)
	}
}
