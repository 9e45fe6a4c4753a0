package http

import (
	"net/http"

	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
	"github.com/MKhiriev/go-internal-auth/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	health := models.ServiceHealth{
		Status:       "ok",
		InternalAuth: h.guard.Enabled(),
	}

	if _, err := utils.WriteJSON(w, health, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health")
	}
}
