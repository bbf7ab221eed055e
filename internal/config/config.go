package config

import (
	"os"
	"strconv"

	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/joho/godotenv"
)

const (
	defaultWeatherBaseURL   = "https://api.openweathermap.org/data/2.5"
	defaultGeocodingBaseURL = "https://api.openweathermap.org/geo/1.0"

	// London, the app's fallback location.
	defaultLat = 51.5073219
	defaultLon = -0.1276474

	defaultWorkerCount = 5
)

// Config holds the application configuration
type Config struct {
	WeatherAPIKey               string
	WeatherAPIBaseURL           string
	GeocodingAPIBaseURL         string
	MongoURI                    string
	MongoUser                   string
	MongoPass                   string
	MongoAuthDB                 string
	DBWeather                   string
	CollectionSavedCities       string
	CollectionMigrationsHistory string
	WorkerCount                 int
	DefaultLat                  float64
	DefaultLon                  float64
}

// Load reads the .env file and loads the configuration
func Load() *Config {
	// Ignore err if .env file is not found in deployment
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded: %v", err)
	}

	return &Config{
		WeatherAPIKey:               os.Getenv("WEATHER_API_KEY"),
		WeatherAPIBaseURL:           getEnv("WEATHER_API_BASE_URL", defaultWeatherBaseURL),
		GeocodingAPIBaseURL:         getEnv("GEOCODING_API_BASE_URL", defaultGeocodingBaseURL),
		MongoURI:                    getMongoURI(),
		MongoUser:                   os.Getenv("MONGO_USER"),
		MongoPass:                   os.Getenv("MONGO_PASS"),
		MongoAuthDB:                 os.Getenv("MONGO_AUTH_DB"),
		DBWeather:                   getEnv("DB_WEATHER_NAME", "weather"),
		CollectionSavedCities:       getEnv("COLLECTION_SAVED_CITIES", "saved_cities"),
		CollectionMigrationsHistory: getEnv("COLLECTION_MIGRATIONS_HISTORY", "migrations_history"),
		WorkerCount:                 getEnvInt("WORKER_COUNT", defaultWorkerCount),
		DefaultLat:                  getEnvFloat("DEFAULT_LAT", defaultLat),
		DefaultLon:                  getEnvFloat("DEFAULT_LON", defaultLon),
	}
}

// getMongoURI constructs the MongoDB URI from environment variables
func getMongoURI() string {
	host := os.Getenv("MONGO_HOST")
	port := os.Getenv("MONGO_PORT")
	user := os.Getenv("MONGO_USER")
	pass := os.Getenv("MONGO_PASS")

	return "mongodb://" + user + ":" + pass + "@" + host + ":" + port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Error("Invalid %s value %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Error("Invalid %s value %q, using %f", key, v, fallback)
		return fallback
	}
	return f
}
