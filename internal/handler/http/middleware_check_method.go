// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/env-metrics/internal/app"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/utils"
)

// CheckHTTPMethod is intended to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. CheckHTTPMethod overrides that behaviour: the request is
// answered exactly like an unknown path, hiding the existence of the route
// from callers that use an unsupported method.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this route")

	notFound(w, r)
}

// notFound answers with the JSON 404 body used for unknown paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, errorBody(app.MsgNotFound), http.StatusNotFound)
}
