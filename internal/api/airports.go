package api

import (
	"net/http"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/aerodesk/skypatterns/internal/validator"
)

func CreateAirportHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AirportRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid airport", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		airport, err := service.CreateAirport(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, airport)
	}
}

func ListAirportsHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airports, err := service.ListAirports(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airports)
	}
}

func GetAirportHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport, err := service.GetAirport(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airport)
	}
}

func UpdateAirportHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AirportRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewValidationError("invalid airport", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		airport, err := service.UpdateAirport(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airport)
	}
}

func DeleteAirportHandler(service ports.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteAirport(r.Context(), r.PathValue("id")); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusNoContent, nil)
	}
}
