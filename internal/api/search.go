package api

import (
	"net/http"
	"strings"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/utils"
)

const searchDateLayout = "2006-01-02"

// SearchFlightsHandler serves GET /v1/flights/search?from=&to=&date=.
// The date parameter is an optional YYYY-MM-DD target day.
func SearchFlightsHandler(service ports.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		from := strings.ToUpper(strings.TrimSpace(query.Get("from")))
		to := strings.ToUpper(strings.TrimSpace(query.Get("to")))
		if from == "" || to == "" {
			ae := utils.NewBadRequest("missing query params: from, to")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		var date *time.Time
		if raw := query.Get("date"); raw != "" {
			parsed, err := time.Parse(searchDateLayout, raw)
			if err != nil {
				ae := utils.NewBadRequest("date must be YYYY-MM-DD")
				utils.RenderResponse(w, ae.StatusCode, ae)
				return
			}
			date = &parsed
		}

		results, err := service.SearchFlights(r.Context(), models.SearchFlightsRequest{
			From: from,
			To:   to,
			Date: date,
		})
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, results)
	}
}

// ListPatternsHandler serves GET /v1/flight-patterns for the public explore
// listing: every pattern enriched with its next departure.
func ListPatternsHandler(service ports.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patterns, err := service.ListPatterns(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, patterns)
	}
}
