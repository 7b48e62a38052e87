package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"

	"wedding-server/middleware"
	"wedding-server/models"
	"wedding-server/services"
	"wedding-server/utils/errors"
)

// GuideHandler serves the guide content: the itinerary plus every
// recommendation grouped by category, and the interactive map page.
type GuideHandler struct {
	registry   *services.RegistryService
	mapsAPIKey string
	tmpl       *template.Template
}

type GuideResponse struct {
	Itinerary  []models.ItineraryEntry `json:"itinerary"`
	Categories map[string][]models.POI `json:"categories"`
	Center     models.GeoPoint         `json:"center"`
}

type mapPageData struct {
	MapsAPIKey  string
	Center      models.GeoPoint
	MarkersJSON template.JS
}

func NewGuideHandler(registry *services.RegistryService, mapsAPIKey string, tmpl *template.Template) *GuideHandler {
	return &GuideHandler{registry: registry, mapsAPIKey: mapsAPIKey, tmpl: tmpl}
}

// LoadMapTemplate reads the map page template from disk.
func LoadMapTemplate(filename string) (*template.Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return template.New("mapa").Parse(string(data))
}

// GetGuide returns the full guide as JSON.
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	categories := make(map[string][]models.POI, len(models.Categories))
	for _, cat := range models.Categories {
		categories[cat] = h.registry.ByCategory(cat)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GuideResponse{
		Itinerary:  services.WeddingItinerary,
		Categories: categories,
		Center:     services.OaxacaCenter,
	})
}

// MapPage renders the interactive map with the provider key and markers
// injected from configuration rather than a module-level global.
func (h *GuideHandler) MapPage(w http.ResponseWriter, r *http.Request) {
	if h.tmpl == nil {
		middleware.WriteError(w, errors.ErrNotFound)
		return
	}
	markers, err := json.Marshal(h.registry.All())
	if err != nil {
		middleware.WriteError(w, errors.Wrap(err, "INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError))
		return
	}
	data := mapPageData{
		MapsAPIKey:  h.mapsAPIKey,
		Center:      services.OaxacaCenter,
		MarkersJSON: template.JS(markers),
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		middleware.WriteError(w, errors.Wrap(err, "INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError))
	}
}
