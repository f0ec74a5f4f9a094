package api

import (
	"net/http"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/aerodesk/skypatterns/internal/validator"
)

// CreateRequestHandler serves POST /v1/requests: a visitor's booking or
// contact request.
func CreateRequestHandler(service ports.RequestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.TicketRequestInput
		if err := utils.JsonDecodeBody(r, &input); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(input); err != nil {
			ae := utils.NewValidationError("invalid ticket request", validationDetails(err))
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		request, err := service.CreateRequest(r.Context(), &input)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, request)
	}
}

// ListRequestsHandler serves GET /v1/requests for the back office.
func ListRequestsHandler(service ports.RequestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := service.ListRequests(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, requests)
	}
}
