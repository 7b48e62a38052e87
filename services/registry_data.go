package services

import (
	"time"
	"wedding-server/models"
)

// Oaxaca sits on central time; the site never needs DST math for two days
// in September, so a fixed offset is enough.
var oaxacaTZ = time.FixedZone("CST", -6*3600)

// OaxacaCenter is the default map center over the Centro Histórico.
var OaxacaCenter = models.NewGeoPoint(17.065, -96.723)

// defaultPOIs is the built-in registry: the two wedding venues, the blocked
// hotels, cultural stops and the couple's restaurant picks.
var defaultPOIs = []models.POI{
	// Wedding events
	{ID: "e1", Name: "Templo de Santo Domingo", Category: models.CategoryEvent,
		Location: models.NewGeoPoint(17.0664, -96.7233),
		Address:  "C. de Macedonio Alcalá s/n, Centro",
		Tags:     []string{"ceremonia"}},
	{ID: "e2", Name: "Salón Berriozábal 120", Category: models.CategoryEvent,
		Location: models.NewGeoPoint(17.0676, -96.7216),
		Address:  "Calle de Berriozábal 120, Centro",
		Tags:     []string{"recepcion"}},

	// Hotels
	{ID: "h1", Name: "Grand Fiesta Americana", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0706, -96.7208),
		Address:  "Calle de José María Pino Suárez #702"},
	{ID: "h2", Name: "Holiday Inn Express", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0706, -96.7231),
		Address:  "Diaz Quintas 115"},
	{ID: "h3", Name: "Hotel Boutique de la Parra", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0594, -96.7234),
		Address:  "Guerrero #117"},
	{ID: "h4", Name: "Suites de la Parra", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0592, -96.7247),
		Address:  "Las Casas #110"},
	{ID: "h5", Name: "Majagua", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0673, -96.7214),
		Address:  "José María Pino Suárez #519"},
	{ID: "h6", Name: "Naura", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0603, -96.7196),
		Address:  "Miguel Hidalgo 918"},
	{ID: "h7", Name: "Hotel Abu", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0641, -96.7248),
		Address:  "Murguía #104"},
	{ID: "h8", Name: "City Centro Oaxaca", Category: models.CategoryHotel,
		Location: models.NewGeoPoint(17.0675, -96.7139),
		Address:  "Aldama #414, Jalatlaco"},

	// Culture
	{ID: "c2", Name: "Teatro Macedonio Alcalá", Category: models.CategoryCulture,
		Location: models.NewGeoPoint(17.0617, -96.7224)},
	{ID: "c3", Name: "Jardín Etnobotánico", Category: models.CategoryCulture,
		Location: models.NewGeoPoint(17.0674, -96.7225)},
	{ID: "c4", Name: "Monte Albán", Category: models.CategoryCulture,
		Location: models.NewGeoPoint(17.0439, -96.7674)},

	// Gastronomy
	{ID: "boulenc", Name: "Boulenc", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0655, -96.7262), PriceTier: "$$–$$$",
		Tags: []string{"breakfast"}, Distinction: "Panadería + patio"},
	{ID: "panam", Name: "Pan:AM", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0645, -96.7245), PriceTier: "$$–$$$",
		Tags: []string{"breakfast"}, Distinction: "Café-panadería"},
	{ID: "itanoni", Name: "Itanoní Tetelas", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0863, -96.7214), PriceTier: "$",
		Tags: []string{"breakfast"}, Distinction: "Maíz oaxaqueño"},
	{ID: "danzantes", Name: "Los Danzantes", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0660, -96.7235), PriceTier: "$$$",
		Tags: []string{"meals"}, Distinction: "Fine dining oaxaqueño"},
	{ID: "pitiona", Name: "La Pitiona", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0665, -96.7230), PriceTier: "$$$",
		Tags: []string{"meals"}, Distinction: "Rooftop + autor"},
	{ID: "casa-oaxaca", Name: "Casa Oaxaca (El Restaurante)", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0664, -96.7233), PriceTier: "$$$",
		Tags: []string{"meals"}, Distinction: "Clásico premium"},
	{ID: "quince-letras", Name: "Las Quince Letras", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0648, -96.7225), PriceTier: "$$",
		Tags: []string{"meals"}, Distinction: "Gran valor"},
	{ID: "criollo", Name: "Criollo", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0628, -96.7328), PriceTier: "$$$",
		Tags: []string{"meals"}},
	{ID: "praga", Name: "Praga Oaxaca", Category: models.CategoryGastronomy,
		Location: models.NewGeoPoint(17.0615, -96.7240), PriceTier: "$$",
		Tags: []string{"drinks"}, Distinction: "Bar flexible"},
}

// WeddingItinerary is the schedule both the itinerary section and the
// calendar export serve.
var WeddingItinerary = []models.ItineraryEntry{
	{
		Slug:        "calenda",
		Title:       "Calenda Oaxaqueña",
		Description: "Tradicional calenda de tehuanas desde el Templo de Santo Domingo hacia Restaurante Catedral.",
		VenueID:     "e1",
		Start:       time.Date(2026, 9, 11, 17, 30, 0, 0, oaxacaTZ),
		End:         time.Date(2026, 9, 11, 18, 15, 0, 0, oaxacaTZ),
	},
	{
		Slug:        "rompehielos",
		Title:       "Rompehielos",
		Description: "Brindis de bienvenida para romper el hielo.",
		VenueID:     "e2",
		Start:       time.Date(2026, 9, 11, 18, 15, 0, 0, oaxacaTZ),
		End:         time.Date(2026, 9, 11, 21, 0, 0, 0, oaxacaTZ),
	},
	{
		Slug:        "ceremonia",
		Title:       "Ceremonia Religiosa",
		Description: "Acompáñanos a celebrar en Oaxaca. Código de vestimenta: formal de verano.",
		VenueID:     "e1",
		Start:       time.Date(2026, 9, 12, 17, 45, 0, 0, oaxacaTZ),
		End:         time.Date(2026, 9, 12, 19, 0, 0, 0, oaxacaTZ),
	},
	{
		Slug:        "recepcion",
		Title:       "Recepción",
		Description: "Fiesta en el Salón Berriozábal 120.",
		VenueID:     "e2",
		Start:       time.Date(2026, 9, 12, 19, 0, 0, 0, oaxacaTZ),
		End:         time.Date(2026, 9, 12, 23, 0, 0, 0, oaxacaTZ),
	},
}

// FindItineraryEntry resolves a calendar slug.
func FindItineraryEntry(slug string) (models.ItineraryEntry, bool) {
	for _, e := range WeddingItinerary {
		if e.Slug == slug {
			return e, true
		}
	}
	return models.ItineraryEntry{}, false
}
