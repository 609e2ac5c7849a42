package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/env-metrics/internal/app"
	"github.com/MKhiriev/env-metrics/internal/auth"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/service"
	"github.com/MKhiriev/env-metrics/internal/store"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/MKhiriev/env-metrics/internal/validators"
	"github.com/MKhiriev/env-metrics/models"
)

type errorMapping struct {
	target error
	status int
	detail string
}

// errorMappings is checked in order; more specific errors come first.
var errorMappings = []errorMapping{
	{service.ErrMissingCredential, http.StatusUnauthorized, app.MsgNotAuthenticated},

	{auth.ErrUnconfigured, http.StatusServiceUnavailable, app.MsgAuthNotConfigured},
	{auth.ErrVerificationUnavailable, http.StatusServiceUnavailable, app.MsgVerificationUnavailable},
	{auth.ErrMissingSubject, http.StatusUnauthorized, app.MsgMissingUserID},
	{auth.ErrTokenExpired, http.StatusUnauthorized, app.MsgTokenExpired},
	{auth.ErrTokenRevoked, http.StatusUnauthorized, app.MsgTokenRevoked},
	{auth.ErrInvalidToken, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrUnknownResource, http.StatusNotFound, app.MsgNotFound},
	{service.ErrUnknownView, http.StatusNotFound, app.MsgNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgDatabaseError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgDatabaseError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgDatabaseError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgDatabaseError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgDatabaseError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgDatabaseError},
}

// responseFromError chooses the status and body for err. Internal details
// never reach the body.
func responseFromError(err error) (int, any) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationBody(validationErr)
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, errorBody(notFoundErr.Error())
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, errorBody(m.detail)
		}
	}

	return http.StatusInternalServerError, errorBody(app.MsgUnexpectedError)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", bearerScheme)
	}
	if _, err = utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

func errorBody(detail string) models.ErrorResponse {
	return models.ErrorResponse{Detail: detail}
}

func validationBody(err *validators.ValidationError) models.ValidationErrorResponse {
	entries := make([]models.FieldErrorEntry, 0, len(err.Fields))
	for _, f := range err.Fields {
		entries = append(entries, models.FieldErrorEntry{
			Field:   f.Field,
			Message: f.Message,
			Kind:    f.Kind,
		})
	}
	return models.ValidationErrorResponse{
		Detail: app.MsgValidationError,
		Errors: entries,
	}
}
