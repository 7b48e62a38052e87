package services

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"

	"github.com/redis/go-redis/v9"
	"wedding-server/models"
)

const geoKey = "pois:geo"

// GeoService answers "what is near me" for guests wandering the Centro
// Histórico. The registry is seeded into a Redis geo set at startup; when
// Redis is unavailable the service falls back to an in-memory haversine
// scan, which is plenty for a couple dozen places.
type GeoService struct {
	registry    *RegistryService
	RedisClient *redis.Client
}

func NewGeoService(registry *RegistryService, redisClient *redis.Client) *GeoService {
	return &GeoService{registry: registry, RedisClient: redisClient}
}

// SeedRedis loads every registry entry into a Redis hash plus the geo set.
func (s *GeoService) SeedRedis(ctx context.Context) {
	if s.RedisClient == nil {
		return
	}
	log.Println("Seeding POIs into Redis...")
	for _, poi := range s.registry.All() {
		poiJSON, err := json.Marshal(poi)
		if err != nil {
			log.Printf("Failed to marshal POI %s: %v", poi.Name, err)
			continue
		}
		if err := s.RedisClient.HSet(ctx, "poi:"+poi.ID, "data", poiJSON).Err(); err != nil {
			log.Printf("Failed to set POI %s in Redis: %v", poi.Name, err)
			continue
		}
		err = s.RedisClient.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Name:      poi.ID,
			Longitude: poi.Location.Lng(),
			Latitude:  poi.Location.Lat(),
		}).Err()
		if err != nil {
			log.Printf("Failed to add POI %s to Redis Geo set: %v", poi.Name, err)
		}
	}
	log.Printf("Seeded %d POIs into Redis", len(s.registry.All()))
}

// NearbyPOI is a registry entry plus its distance from the queried point.
type NearbyPOI struct {
	models.POI
	DistanceM float64 `json:"distance_m"`
}

// FindNearby returns POIs within radiusM meters of (lat, lon), closest
// first, optionally restricted to one category.
func (s *GeoService) FindNearby(ctx context.Context, lat, lon, radiusM float64, category string) ([]NearbyPOI, error) {
	if s.RedisClient != nil {
		results, err := s.findNearbyRedis(ctx, lat, lon, radiusM, category)
		if err == nil {
			return results, nil
		}
		log.Printf("Redis nearby query failed, falling back to registry scan: %v", err)
	}
	return s.findNearbyLocal(lat, lon, radiusM, category), nil
}

func (s *GeoService) findNearbyRedis(ctx context.Context, lat, lon, radiusM float64, category string) ([]NearbyPOI, error) {
	geoResults, err := s.RedisClient.GeoRadius(ctx, geoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius:    radiusM / 1000,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
		Count:     50,
	}).Result()
	if err != nil {
		return nil, err
	}

	var results []NearbyPOI
	for _, geoResult := range geoResults {
		poiJSON, err := s.RedisClient.HGet(ctx, "poi:"+geoResult.Name, "data").Result()
		if err != nil {
			log.Printf("Redis Get error for POI %s: %v", geoResult.Name, err)
			continue
		}
		var poi models.POI
		if err := json.Unmarshal([]byte(poiJSON), &poi); err != nil {
			log.Printf("Failed to unmarshal POI %s: %v", geoResult.Name, err)
			continue
		}
		if category != "" && poi.Category != category {
			continue
		}
		results = append(results, NearbyPOI{POI: poi, DistanceM: geoResult.Dist * 1000})
	}
	return results, nil
}

func (s *GeoService) findNearbyLocal(lat, lon, radiusM float64, category string) []NearbyPOI {
	var results []NearbyPOI
	for _, poi := range s.registry.All() {
		if category != "" && poi.Category != category {
			continue
		}
		d := haversineM(lat, lon, poi.Location.Lat(), poi.Location.Lng())
		if d <= radiusM {
			results = append(results, NearbyPOI{POI: poi, DistanceM: d})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].DistanceM < results[j].DistanceM })
	return results
}

// haversineM returns the great-circle distance in meters.
func haversineM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
