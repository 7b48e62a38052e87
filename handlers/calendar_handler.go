package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"wedding-server/middleware"
	"wedding-server/services"
	"wedding-server/utils/errors"
)

type CalendarHandler struct {
	calendar *services.CalendarService
	registry *services.RegistryService
}

func NewCalendarHandler(calendar *services.CalendarService, registry *services.RegistryService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, registry: registry}
}

// DownloadICS serves one itinerary entry as a .ics attachment. An optional
// guest query param personalizes the description the way the hero dialog
// does.
func (h *CalendarHandler) DownloadICS(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	entry, ok := services.FindItineraryEntry(slug)
	if !ok {
		middleware.WriteError(w, errors.ErrNotFound)
		return
	}

	event := h.calendar.EventFor(entry, h.registry, r.URL.Query().Get("guest"))
	ics := h.calendar.BuildICS(event)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="fernanda-diego-%s.ics"`, slug))
	w.Write([]byte(ics))
}
