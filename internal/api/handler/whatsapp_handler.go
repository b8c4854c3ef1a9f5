package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
)

const MsgWhatsAppDisabled = "WhatsApp sending is disabled on this server."

type WhatsAppDisabledResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// @Summary whatsapp relay, disabled
// @Tags whatsapp
// @Produce json
// @Failure 501 {object} handler.WhatsAppDisabledResponse "disabled"
// @Router /whatsapp [post]
func WhatsAppSend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	response.WriteJSON(w, http.StatusNotImplemented, WhatsAppDisabledResponse{Success: false, Error: MsgWhatsAppDisabled})
}

func WhatsAppPreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.WriteHeader(http.StatusNoContent)
}
