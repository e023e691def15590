package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
)

const (
	msgNotDict = "Submitted data need to be of type dict"

	allowIndex = "GET, POST"
	allowItem  = "GET, PATCH, DELETE"
)

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error, id string) {
	var verr *entity.ValidationError
	var rerr *entity.RestrictedError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, r, http.StatusBadRequest, map[string]entity.Errors{"errors": verr.Fields})
	case errors.As(err, &rerr):
		writeJSON(w, r, http.StatusConflict, errorBody(rerr.Error()))
	case errors.Is(err, model.ErrNotFound), errors.Is(err, entity.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorBody(fmt.Sprintf("id %s not found", id)))
	case errors.Is(err, entity.ErrUnknownKind):
		writeJSON(w, r, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, model.ErrInvalidArgument):
		writeJSON(w, r, http.StatusBadRequest, errorBody(err.Error()))
	default:
		writeJSON(w, r, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func methodNotAllowed(msg, allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeJSON(w, r, http.StatusMethodNotAllowed, errorBody(msg))
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}
