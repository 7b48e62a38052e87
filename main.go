package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"wedding-server/handlers"
	"wedding-server/middleware"
	"wedding-server/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default configuration")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Registry and geo services
	registry := services.LoadRegistry("./data/oaxaca-pois.json")
	geoService := services.NewGeoService(registry, newRedisClient())
	if geoService.RedisClient != nil {
		geoService.SeedRedis(context.Background())
	}

	// Attendee store: MongoDB when configured, in-memory otherwise
	var store services.AttendeeStore
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Fatalf("MongoDB connection failed: %v", err)
		}
		if err := client.Ping(context.Background(), nil); err != nil {
			log.Fatalf("Failed to ping MongoDB: %v", err)
		}
		log.Println("Connected to MongoDB")
		store = services.NewMongoAttendeeStore(client)
	} else {
		log.Println("MONGODB_URI not set, attendee log kept in memory")
		store = services.NewMemoryAttendeeStore()
	}

	whatsappPhone := os.Getenv("WHATSAPP_PHONE")
	if whatsappPhone == "" {
		log.Fatal("WHATSAPP_PHONE environment variable is not set")
	}

	mapsAPIKey := os.Getenv("MAPS_API_KEY")
	if mapsAPIKey == "" {
		log.Println("MAPS_API_KEY not set, map page degrades to a static shell")
	}

	tmpl, err := handlers.LoadMapTemplate("./templates/mapa.html")
	if err != nil {
		log.Printf("Failed to load map template: %v", err)
	}

	calendarService := services.NewCalendarService()
	rsvpService := services.NewRSVPService(whatsappPhone)

	attendeeHandler := handlers.NewAttendeeHandler(store)
	poiHandler := handlers.NewPOIHandler(registry, geoService)
	calendarHandler := handlers.NewCalendarHandler(calendarService, registry)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)
	guideHandler := handlers.NewGuideHandler(registry, mapsAPIKey, tmpl)

	r := mux.NewRouter()

	// CORS middleware
	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.ErrorMiddleware())

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/attendees", attendeeHandler.CreateAttendee).Methods("POST", "OPTIONS")
	// The guest list is only guarded when ADMIN_JWT_SECRET is set
	adminGuard := middleware.AdminJWTMiddleware(os.Getenv("ADMIN_JWT_SECRET"))
	api.Handle("/attendees", adminGuard(http.HandlerFunc(attendeeHandler.ListAttendees))).Methods("GET", "OPTIONS")

	api.HandleFunc("/pois", poiHandler.GetPOIs).Methods("GET", "OPTIONS")
	api.HandleFunc("/pois/nearby", poiHandler.GetNearbyPOIs).Methods("GET", "OPTIONS")
	api.HandleFunc("/map/target", poiHandler.GetMapTarget).Methods("GET", "OPTIONS")
	api.HandleFunc("/guide", guideHandler.GetGuide).Methods("GET", "OPTIONS")
	api.HandleFunc("/calendar/{slug}.ics", calendarHandler.DownloadICS).Methods("GET", "OPTIONS")
	api.HandleFunc("/rsvp/link", rsvpHandler.GetLink).Methods("GET", "OPTIONS")

	// Map page + assets
	r.HandleFunc("/mapa", guideHandler.MapPage).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))

	log.Println("Server starting on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// newRedisClient builds the optional geo-cache client; nearby queries fall
// back to an in-memory scan when it is absent.
func newRedisClient() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, nearby queries use the in-memory registry")
		return nil
	}
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		db, err := strconv.Atoi(redisDBStr)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB value: %v", err)
		}
		redisDB = db
	}
	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   redisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Failed to connect to Redis, nearby queries use the in-memory registry: %v", err)
		return nil
	}
	return client
}
