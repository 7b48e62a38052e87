package services

import (
	"fmt"
	"net/url"
	"strings"

	"wedding-server/utils/errors"
)

// RSVPService builds the WhatsApp deep link the RSVP dialog opens. The
// conversation itself happens entirely inside WhatsApp; nothing calls back.
type RSVPService struct {
	phone string // digits only, country code included
}

func NewRSVPService(phone string) *RSVPService {
	return &RSVPService{phone: phone}
}

// WhatsAppLink returns a wa.me URL with the confirmation message pre-filled
// for the given guest.
func (s *RSVPService) WhatsAppLink(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrEmptyName
	}
	message := fmt.Sprintf("Hola, soy %s, quiero confirmar mi asistencia a la boda de Fer y Diego el 12 de Septiembre de 2026.", name)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.phone, url.QueryEscape(message)), nil
}
