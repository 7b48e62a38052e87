package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wedding-server/mapsync"
	"wedding-server/middleware"
	"wedding-server/models"
	"wedding-server/services"
	"wedding-server/utils/errors"
)

type POIHandler struct {
	registry   *services.RegistryService
	geoService *services.GeoService
}

type POIListResponse struct {
	POIs     []models.POI `json:"pois"`
	Count    int          `json:"count"`
	Category string       `json:"category,omitempty"`
}

type NearbyPOIResponse struct {
	NearbyPOIs []services.NearbyPOI `json:"nearby_pois"`
	Count      int                  `json:"count"`
	Lat        float64              `json:"lat"`
	Lon        float64              `json:"lon"`
	Radius     float64              `json:"radius"`
}

type MapTargetResponse struct {
	ID     string         `json:"id"`
	Center mapsync.LatLng `json:"center"`
	Zoom   float64        `json:"zoom"`
}

func NewPOIHandler(registry *services.RegistryService, geoService *services.GeoService) *POIHandler {
	return &POIHandler{registry: registry, geoService: geoService}
}

// GetPOIs lists the registry, optionally filtered to one category tab.
func (h *POIHandler) GetPOIs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	var pois []models.POI
	if category != "" {
		if !models.ValidCategory(category) {
			middleware.WriteError(w, errors.ErrInvalidInput)
			return
		}
		pois = h.registry.ByCategory(category)
	} else {
		pois = h.registry.All()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(POIListResponse{
		POIs:     pois,
		Count:    len(pois),
		Category: category,
	})
}

// GetNearbyPOIs answers radius queries around a guest's location.
func (h *POIHandler) GetNearbyPOIs(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	radius, err := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if err != nil || radius <= 0 {
		radius = 1500 // Default radius in meters, about a 20 minute walk
	}
	category := r.URL.Query().Get("category")

	pois, err := h.geoService.FindNearby(r.Context(), lat, lon, radius, category)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NearbyPOIResponse{
		NearbyPOIs: pois,
		Count:      len(pois),
		Lat:        lat,
		Lon:        lon,
		Radius:     radius,
	})
}

// GetMapTarget computes the map center that places a POI's marker at the
// requested pixel offset from the viewport center, so clients can pan
// without redoing the projection math.
func (h *POIHandler) GetMapTarget(w http.ResponseWriter, r *http.Request) {
	poi, ok := h.registry.Find(r.URL.Query().Get("id"))
	if !ok {
		middleware.WriteError(w, errors.ErrNotFound)
		return
	}
	zoom, err := strconv.ParseFloat(r.URL.Query().Get("zoom"), 64)
	if err != nil || zoom <= 0 {
		zoom = 14
	}
	dx, _ := strconv.ParseFloat(r.URL.Query().Get("dx"), 64)
	dy, _ := strconv.ParseFloat(r.URL.Query().Get("dy"), 64)

	marker := mapsync.LatLng{Lat: poi.Location.Lat(), Lng: poi.Location.Lng()}
	center := mapsync.TargetCenter(marker, dx, dy, zoom)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MapTargetResponse{ID: poi.ID, Center: center, Zoom: zoom})
}
