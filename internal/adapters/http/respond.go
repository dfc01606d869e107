package httpadapter

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	api "peorisk/internal/api"
	"peorisk/internal/apperr"
	"peorisk/internal/services/authoring"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorBody{Message: msg})
}

// badRequest reports bodies and parameters the generated handlers could not
// bind.
func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeMessage(w, http.StatusBadRequest, err.Error())
}

// writeError maps service errors onto status codes. Internal errors are
// logged and never echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *bodyError
	if errors.As(err, &invalid) {
		body := api.ErrorBody{Message: invalid.message}
		if len(invalid.issues) > 0 {
			body.Errors = &invalid.issues
		}
		writeJSON(w, http.StatusBadRequest, body)
		return
	}
	var verrs authoring.ValidationErrors
	if errors.As(err, &verrs) {
		issues := fieldIssues(verrs)
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorBody{Message: "validation failed", Errors: &issues})
		return
	}
	e, ok := apperr.As(err)
	if !ok {
		s.log.WithError(err).Error("request failed", map[string]interface{}{"path": r.URL.Path})
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	switch e.Code {
	case apperr.CodeInvalid:
		writeMessage(w, http.StatusBadRequest, e.Message)
	case apperr.CodeNotFound:
		writeMessage(w, http.StatusNotFound, e.Message)
	case apperr.CodeConflict, apperr.CodeBlocked:
		writeMessage(w, http.StatusConflict, e.Message)
	default:
		s.log.WithError(err).Error("request failed", map[string]interface{}{"path": r.URL.Path})
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func fieldIssues(verrs authoring.ValidationErrors) []api.FieldIssue {
	out := make([]api.FieldIssue, len(verrs))
	for i, fe := range verrs {
		index := fe.Index
		out[i] = api.FieldIssue{Index: &index, Field: fe.Field, Message: fe.Message}
		if fe.QuestionID != "" {
			id := fe.QuestionID
			out[i].QuestionId = &id
		}
	}
	return out
}
