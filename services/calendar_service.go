package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"wedding-server/models"
)

const (
	icsProdID   = "-//Fernanda & Diego Wedding//Calendar//ES"
	icsTimeform = "20060102T150405Z"
)

// CalendarService renders itinerary entries as downloadable iCalendar
// payloads and can read them back, which keeps the format honest.
type CalendarService struct{}

func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

// BuildICS produces an RFC 5545 VCALENDAR with a single VEVENT. Timestamps
// are normalized to UTC; lines are CRLF-joined as the format demands.
func (s *CalendarService) BuildICS(event models.CalendarEvent) string {
	dtstamp := formatICSTime(time.Now())
	uid := fmt.Sprintf("%s@fernanda-diego", uuid.New().String())

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + dtstamp,
		"DTSTART:" + formatICSTime(event.Start),
		"DTEND:" + formatICSTime(event.End),
		"SUMMARY:" + escapeICSText(event.Title),
	}
	if event.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(event.Description))
	}
	if event.Location != "" {
		lines = append(lines, "LOCATION:"+escapeICSText(event.Location))
	}
	if event.URL != "" {
		lines = append(lines, "URL:"+escapeICSText(event.URL))
	}
	if event.Organizer != "" {
		lines = append(lines, "ORGANIZER:"+escapeICSText(event.Organizer))
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// ParseICS reads back a payload produced by BuildICS. It only understands
// the subset this service writes.
func (s *CalendarService) ParseICS(text string) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	sawEvent := false
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch name {
		case "BEGIN":
			if value == "VEVENT" {
				sawEvent = true
			}
		case "SUMMARY":
			event.Title = unescapeICSText(value)
		case "DESCRIPTION":
			event.Description = unescapeICSText(value)
		case "LOCATION":
			event.Location = unescapeICSText(value)
		case "URL":
			event.URL = unescapeICSText(value)
		case "ORGANIZER":
			event.Organizer = unescapeICSText(value)
		case "DTSTART":
			t, err := time.Parse(icsTimeform, value)
			if err != nil {
				return models.CalendarEvent{}, fmt.Errorf("bad DTSTART %q: %w", value, err)
			}
			event.Start = t
		case "DTEND":
			t, err := time.Parse(icsTimeform, value)
			if err != nil {
				return models.CalendarEvent{}, fmt.Errorf("bad DTEND %q: %w", value, err)
			}
			event.End = t
		}
	}
	if !sawEvent {
		return models.CalendarEvent{}, fmt.Errorf("no VEVENT in payload")
	}
	return event, nil
}

// EventFor turns an itinerary entry into a calendar event, resolving the
// venue through the registry and optionally personalizing the description
// with the guest's name.
func (s *CalendarService) EventFor(entry models.ItineraryEntry, registry *RegistryService, guest string) models.CalendarEvent {
	location := "Oaxaca de Juárez, Oaxaca, México"
	if venue, ok := registry.Find(entry.VenueID); ok {
		location = venue.Name
		if venue.Address != "" {
			location += ", " + venue.Address
		}
	}
	description := entry.Description
	if guest = strings.TrimSpace(guest); guest != "" {
		if description != "" {
			description += "\n\n"
		}
		description += "Invitado: " + guest
	}
	return models.CalendarEvent{
		Title:       entry.Title + " · Boda de Fernanda & Diego",
		Description: description,
		Location:    location,
		Start:       entry.Start,
		End:         entry.End,
	}
}

func formatICSTime(t time.Time) string {
	return t.UTC().Format(icsTimeform)
}

func escapeICSText(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "\n", "\\n")
	v = strings.ReplaceAll(v, ",", "\\,")
	v = strings.ReplaceAll(v, ";", "\\;")
	return v
}

func unescapeICSText(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i == len(v)-1 {
			b.WriteByte(v[i])
			continue
		}
		i++
		switch v[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
