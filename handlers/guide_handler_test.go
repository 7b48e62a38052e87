package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding-server/services"
)

func TestGetGuide(t *testing.T) {
	registry := services.LoadRegistry("no-such-file.json")
	h := NewGuideHandler(registry, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/guide", nil)
	w := httptest.NewRecorder()
	h.GetGuide(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp GuideResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Itinerary) == 0 {
		t.Error("guide has no itinerary")
	}
	for _, cat := range []string{"event", "hotel", "gastronomy", "culture"} {
		if len(resp.Categories[cat]) == 0 {
			t.Errorf("guide has no %s entries", cat)
		}
	}
	if resp.Center.Lat() == 0 || resp.Center.Lng() == 0 {
		t.Errorf("center = %+v, want Oaxaca coordinates", resp.Center)
	}
}

func TestMapPage(t *testing.T) {
	registry := services.LoadRegistry("no-such-file.json")
	tmpl := template.Must(template.New("mapa").Parse(
		`<script>var key = "{{.MapsAPIKey}}"; var markers = {{.MarkersJSON}};</script>`))
	h := NewGuideHandler(registry, "test-key", tmpl)

	req := httptest.NewRequest(http.MethodGet, "/mapa", nil)
	w := httptest.NewRecorder()
	h.MapPage(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "test-key") {
		t.Error("page missing maps api key")
	}
	if !strings.Contains(body, "Templo de Santo Domingo") {
		t.Error("page missing injected markers")
	}
}

func TestMapPageWithoutTemplate(t *testing.T) {
	registry := services.LoadRegistry("no-such-file.json")
	h := NewGuideHandler(registry, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/mapa", nil)
	w := httptest.NewRecorder()
	h.MapPage(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
