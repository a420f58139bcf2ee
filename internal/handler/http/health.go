package http

import (
	"net/http"

	"github.com/MKhiriev/go-repo-uploader/internal/utils"
)

const healthMessage = "GitHub uploader running"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, healthMessage, http.StatusOK)
}
