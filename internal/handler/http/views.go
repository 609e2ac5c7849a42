package http

import (
	"net/http"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listViews(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.services.ViewService.Views(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listViews").Msg("error writing response")
	}
}

// getView serves every row of the view addressed by
// /views/{dataset}/{metric}/{period} as a bare JSON array. The request is
// authenticated only when the view requires it.
func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	route := catalog.ViewRoute(chi.URLParam(r, "dataset"), chi.URLParam(r, "metric"), chi.URLParam(r, "period"))

	view, err := h.services.ViewService.Resolve(r.Context(), route)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if view.RequiresAuth {
		var ok bool
		if r, ok = h.authenticate(w, r); !ok {
			return
		}
	}

	rows, err := h.services.ViewService.Rows(r.Context(), view)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, rows, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getView").Msg("error writing response")
	}
}
