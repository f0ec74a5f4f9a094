package api

import (
	"net/http"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/aerodesk/skypatterns/internal/validator"
)

func CreateAirlineHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AirlineRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid airline", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		airline, err := service.CreateAirline(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, airline)
	}
}

func ListAirlinesHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airlines, err := service.ListAirlines(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airlines)
	}
}

func GetAirlineHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airline, err := service.GetAirline(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airline)
	}
}

func UpdateAirlineHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AirlineRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid airline", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		airline, err := service.UpdateAirline(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airline)
	}
}

func DeleteAirlineHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteAirline(r.Context(), r.PathValue("id")); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusNoContent, nil)
	}
}
