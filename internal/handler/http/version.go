package http

import (
	"net/http"

	"github.com/MKhiriev/user-management-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(serverVersion))
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
