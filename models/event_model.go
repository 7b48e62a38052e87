package models

import "time"

// CalendarEvent describes a single downloadable calendar entry.
type CalendarEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	URL         string    `json:"url,omitempty"`
	Organizer   string    `json:"organizer,omitempty"`
}

// ItineraryEntry is one stop of the wedding day. VenueID references the POI
// registry so the map can highlight the venue.
type ItineraryEntry struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VenueID     string    `json:"venue_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}
