package services

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	svc := NewRSVPService("5215512345678")

	link, err := svc.WhatsAppLink("María José")
	if err != nil {
		t.Fatalf("WhatsAppLink: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/5215512345678?text=") {
		t.Fatalf("link = %q", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parsing link: %v", err)
	}
	text := u.Query().Get("text")
	if !strings.Contains(text, "María José") {
		t.Errorf("message = %q, want guest name", text)
	}
	if !strings.Contains(text, "Fer y Diego") {
		t.Errorf("message = %q, want the couple's names", text)
	}
	if !strings.Contains(text, "12 de Septiembre de 2026") {
		t.Errorf("message = %q, want the wedding date", text)
	}
}

func TestWhatsAppLinkTrimsName(t *testing.T) {
	svc := NewRSVPService("5215512345678")

	link, err := svc.WhatsAppLink("  Diego  ")
	if err != nil {
		t.Fatalf("WhatsAppLink: %v", err)
	}
	u, _ := url.Parse(link)
	if text := u.Query().Get("text"); strings.Contains(text, "  Diego") {
		t.Errorf("message = %q, name not trimmed", text)
	}
}

func TestWhatsAppLinkEmptyName(t *testing.T) {
	svc := NewRSVPService("5215512345678")

	for _, name := range []string{"", "   "} {
		if _, err := svc.WhatsAppLink(name); err == nil {
			t.Errorf("WhatsAppLink(%q) should fail", name)
		}
	}
}
