package services

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"wedding-server/mapsync"
	"wedding-server/models"
)

// RegistryService is the read-only table of every place the guide shows.
// Lookup is by id first, then by display name case-insensitively, so marker
// click payloads and card ids resolve through one function instead of ad hoc
// matching in every caller. Populated once at startup, never mutated.
type RegistryService struct {
	pois   []models.POI
	byID   map[string]models.POI
	byName map[string]models.POI
}

func NewRegistryService(pois []models.POI) *RegistryService {
	s := &RegistryService{
		pois:   pois,
		byID:   make(map[string]models.POI, len(pois)),
		byName: make(map[string]models.POI, len(pois)),
	}
	for _, p := range pois {
		s.byID[p.ID] = p
		s.byName[strings.ToLower(p.Name)] = p
	}
	return s
}

// LoadRegistry reads POIs from a JSON file, falling back to the built-in
// Oaxaca data when the file is absent.
func LoadRegistry(path string) *RegistryService {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("No POI file at %s, using built-in registry", path)
		return NewRegistryService(defaultPOIs)
	}
	defer file.Close()

	var pois []models.POI
	if err := json.NewDecoder(file).Decode(&pois); err != nil {
		log.Printf("Failed to decode POI file %s: %v, using built-in registry", path, err)
		return NewRegistryService(defaultPOIs)
	}
	log.Printf("Loaded %d POIs from %s", len(pois), path)
	return NewRegistryService(pois)
}

// Find resolves an id or display name to a POI.
func (s *RegistryService) Find(idOrName string) (models.POI, bool) {
	if p, ok := s.byID[idOrName]; ok {
		return p, true
	}
	p, ok := s.byName[strings.ToLower(idOrName)]
	return p, ok
}

// All returns every POI in registry order.
func (s *RegistryService) All() []models.POI {
	return s.pois
}

// ByCategory returns the POIs of one category in registry order.
func (s *RegistryService) ByCategory(category string) []models.POI {
	var out []models.POI
	for _, p := range s.pois {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// First returns the first POI of a category, used when a tab change
// auto-selects its leading entry.
func (s *RegistryService) First(category string) (models.POI, bool) {
	for _, p := range s.pois {
		if p.Category == category {
			return p, true
		}
	}
	return models.POI{}, false
}

// Markers adapts the registry for the map/list sync engine.
func (s *RegistryService) Markers() []mapsync.Marker {
	out := make([]mapsync.Marker, 0, len(s.pois))
	for _, p := range s.pois {
		out = append(out, markerOf(p))
	}
	return out
}

func markerOf(p models.POI) mapsync.Marker {
	return mapsync.Marker{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Pos:      mapsync.LatLng{Lat: p.Location.Lat(), Lng: p.Location.Lng()},
	}
}

// MarkerRegistry satisfies mapsync.Registry on top of the POI table.
type MarkerRegistry struct {
	reg *RegistryService
}

func (s *RegistryService) MarkerRegistry() *MarkerRegistry {
	return &MarkerRegistry{reg: s}
}

func (r *MarkerRegistry) Find(idOrName string) (mapsync.Marker, bool) {
	p, ok := r.reg.Find(idOrName)
	if !ok {
		return mapsync.Marker{}, false
	}
	return markerOf(p), true
}

func (r *MarkerRegistry) First(category string) (mapsync.Marker, bool) {
	p, ok := r.reg.First(category)
	if !ok {
		return mapsync.Marker{}, false
	}
	return markerOf(p), true
}
