package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/utils"
	"github.com/MKhiriev/go-saas-starter/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AnalyzeService.Analyze(ctx, user, req.Text)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("text analysis failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
