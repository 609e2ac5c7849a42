package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/env-metrics/internal/app"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/MKhiriev/env-metrics/models"
)

const apiPrefix = "/api/v1"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Service: app.ServiceName,
	}, http.StatusOK)
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"health":  "/health",
		"metrics": "/metrics",
		"views":   apiPrefix + "/views",
	}
	for _, resource := range h.catalog.Resources() {
		endpoints[strings.ReplaceAll(resource.Name, "-", "_")] = apiPrefix + "/" + resource.Name
	}

	utils.WriteJSON(w, models.APIInfo{
		Version:   h.version,
		Endpoints: endpoints,
	}, http.StatusOK)
}
