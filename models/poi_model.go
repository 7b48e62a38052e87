package models

// Category values for points of interest shown on the guide.
const (
	CategoryEvent      = "event"
	CategoryHotel      = "hotel"
	CategoryGastronomy = "gastronomy"
	CategoryCulture    = "culture"
)

// Categories lists every valid POI category, wedding events first.
var Categories = []string{CategoryEvent, CategoryHotel, CategoryGastronomy, CategoryCulture}

type POI struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Category    string   `json:"category" bson:"category"`
	Location    GeoPoint `json:"location" bson:"location"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	PriceTier   string   `json:"price_tier,omitempty" bson:"price_tier,omitempty"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Website     string   `json:"website,omitempty" bson:"website,omitempty"`
	Distinction string   `json:"distinction,omitempty" bson:"distinction,omitempty"`
}

// GeoPoint is a GeoJSON point: coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (g GeoPoint) Lng() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

func (g GeoPoint) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
