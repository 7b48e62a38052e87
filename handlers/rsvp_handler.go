package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-server/middleware"
	"wedding-server/services"
)

type RSVPHandler struct {
	rsvpService *services.RSVPService
}

type RSVPLinkResponse struct {
	URL string `json:"url"`
}

func NewRSVPHandler(rsvpService *services.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService}
}

// GetLink builds the WhatsApp handoff URL for a guest. The client opens it
// in a new browser context; confirmation is WhatsApp's problem from there.
func (h *RSVPHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.rsvpService.WhatsAppLink(r.URL.Query().Get("name"))
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RSVPLinkResponse{URL: link})
}
