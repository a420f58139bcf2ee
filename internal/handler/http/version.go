package http

import (
	"net/http"

	"github.com/MKhiriev/go-repo-uploader/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}
