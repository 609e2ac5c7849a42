package http

import (
	"net/http"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/MKhiriev/env-metrics/internal/validators"
	"github.com/go-chi/chi/v5"
)

// listMeasurements serves one filtered page of resource rows as
// {data, total, limit, offset}.
func (h *Handler) listMeasurements(resource catalog.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		query, err := validators.BuildListQuery(r.URL.Query(), resource.Filters)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		result, err := h.services.MeasurementService.List(r.Context(), resource, query)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.listMeasurements").Msg("error writing response")
		}
	}
}

// getMeasurement serves the single resource row identified by the {id}
// path segment.
func (h *Handler) getMeasurement(resource catalog.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		id, err := validators.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		row, err := h.services.MeasurementService.Get(r.Context(), resource, id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, row, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.getMeasurement").Msg("error writing response")
		}
	}
}
