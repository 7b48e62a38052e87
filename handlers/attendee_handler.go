package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"wedding-server/middleware"
	"wedding-server/models"
	"wedding-server/services"
	"wedding-server/utils/errors"
)

const (
	defaultAttendeeLimit = 100
	maxAttendeeLimit     = 500
	maxNameLength        = 255
	attendeeSource       = "wedding_hero"
)

type AttendeeHandler struct {
	store services.AttendeeStore
}

type AttendeeCreatedResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type AttendeeListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}

func NewAttendeeHandler(store services.AttendeeStore) *AttendeeHandler {
	return &AttendeeHandler{store: store}
}

// CreateAttendee logs a confirmation from the hero dialog. The name is the
// only payload; request metadata rides along for the couple's curiosity.
func (h *AttendeeHandler) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == nil {
		middleware.WriteError(w, errors.ErrMissingName)
		return
	}

	name := strings.TrimSpace(*input.Name)
	if name == "" {
		middleware.WriteError(w, errors.ErrEmptyName)
		return
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		middleware.WriteError(w, errors.ErrNameTooLong)
		return
	}

	attendee := models.Attendee{
		Name:      name,
		Source:    attendeeSource,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}
	created, err := h.store.Insert(r.Context(), attendee)
	if err != nil {
		middleware.WriteError(w, errors.Wrap(err, "INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AttendeeCreatedResponse{
		ID:        created.ID,
		Name:      created.Name,
		CreatedAt: created.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}

// ListAttendees returns confirmations newest-first, up to a clamped limit.
func (h *AttendeeHandler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	limit := clampLimit(r.URL.Query().Get("limit"))
	attendees, err := h.store.List(r.Context(), limit)
	if err != nil {
		middleware.WriteError(w, errors.Wrap(err, "INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError))
		return
	}

	items := make([]AttendeeListItem, 0, len(attendees))
	for _, a := range attendees {
		items = append(items, AttendeeListItem{
			ID:        a.ID,
			Name:      a.Name,
			Source:    a.Source,
			CreatedAt: a.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// clampLimit parses the limit query param: unparsable or non-positive
// values fall back to the default, oversized ones clamp to the maximum.
func clampLimit(raw string) int {
	if raw == "" {
		return defaultAttendeeLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultAttendeeLimit
	}
	if limit > maxAttendeeLimit {
		return maxAttendeeLimit
	}
	return limit
}
