// Package handlers exposes the REST surface: auth, blog and admin routes.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError maps an application error to its HTTP status. Validation
// failures carry the per-field message list; internal failures are
// logged and surfaced as a generic message with no detail leaked.
func (h *BaseHandler) RespondError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	status := apperr.Status(err)

	if appErr.Kind == apperr.KindInternal {
		h.Logger.Error("request failed", zap.Error(err))
		h.RespondJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}

	if appErr.Kind == apperr.KindValidation {
		h.RespondJSON(w, status, map[string][]string{"errors": appErr.Fields})
		return
	}

	h.RespondJSON(w, status, map[string]string{"error": appErr.Message})
}
