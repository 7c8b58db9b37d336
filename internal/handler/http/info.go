package http

import (
	"net/http"

	"github.com/MKhiriev/go-saas-starter/internal/utils"
)

func (h *Handler) appInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.Info(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.Check(r.Context())

	utils.WriteJSON(w, report, http.StatusOK)
}
