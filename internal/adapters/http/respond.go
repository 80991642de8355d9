package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	api "policymind/internal/api"
	"policymind/internal/domain"
)

const (
	maxJSONBody = 1 << 20
	// multipartSlack covers form boundaries and the title field on top of the file.
	multipartSlack = 64 << 10
)

// Bodies shared by more than one failure. A caller without a company and a
// briefing owned by another company must read exactly like a missing one.
const (
	msgNotFound       = "Insight not found"
	msgAnalysisFailed = "Failed to analyze PDF"
	msgInternal       = "Internal server error"
	msgInvalidJSON    = "Invalid JSON body"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}

// writeError maps the domain error taxonomy to a status code. Only messages
// meant for callers are echoed; anything else is logged.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve       *domain.ValidationError
		de       *domain.DeliveryError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		writeErrorBody(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoCompany):
		writeErrorBody(w, http.StatusNotFound, msgNotFound)
	case errors.As(err, &ve):
		writeErrorBody(w, http.StatusBadRequest, ve.Msg)
	case errors.As(err, &tooLarge):
		writeErrorBody(w, http.StatusBadRequest, domain.ErrPayloadTooLarge.Msg)
	case errors.Is(err, domain.ErrNoRecipients):
		writeErrorBody(w, http.StatusBadRequest, domain.ErrNoRecipients.Msg)
	case errors.As(err, &de):
		s.log.WithError(err).WithField("path", r.URL.Path).Warn("notification delivery failed")
		writeErrorBody(w, http.StatusBadGateway, de.Msg)
	case errors.Is(err, domain.ErrAnalysisFailed):
		s.log.WithError(err).WithField("path", r.URL.Path).Error("document analysis failed")
		writeErrorBody(w, http.StatusInternalServerError, msgAnalysisFailed)
	default:
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeErrorBody(w, http.StatusInternalServerError, msgInternal)
	}
}

// requestError handles failures the generated router reports before a
// handler runs: undecodable bodies and malformed parameters.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		tooLarge   *http.MaxBytesError
		paramError *api.InvalidParamFormatError
	)
	switch {
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		writeErrorBody(w, http.StatusBadRequest, errInvalidForm.Msg)
	case errors.As(err, &tooLarge):
		writeErrorBody(w, http.StatusBadRequest, "Request body too large")
	case errors.As(err, &paramError):
		writeErrorBody(w, http.StatusBadRequest, "Invalid "+paramError.ParamName+" parameter")
	default:
		s.log.WithError(err).WithField("path", r.URL.Path).Debug("rejected request")
		writeErrorBody(w, http.StatusBadRequest, msgInvalidJSON)
	}
}
