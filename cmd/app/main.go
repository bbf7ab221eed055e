package main

import (
	"context"
	"log"

	"github.com/Tsiqara/WeatherApp/internal/channels"
	"github.com/Tsiqara/WeatherApp/internal/config"
	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/Tsiqara/WeatherApp/internal/store"
	"github.com/Tsiqara/WeatherApp/internal/workpool"
	"github.com/Tsiqara/WeatherApp/models"
	"github.com/Tsiqara/WeatherApp/services/weather"
)

func main() {
	logger.Init()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := store.ConnectMongoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := store.DisconnectMongoDB(ctx, client); err != nil {
			logger.Error("Error disconnecting MongoDB: %v", err)
		}
	}()

	if err := store.RunMigrations(ctx, client, cfg); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	chans := channels.New()

	wp := workpool.New(chans, cfg.WorkerCount)
	wp.Start(ctx)

	weatherSvc := weather.NewService(cfg)

	cities, err := store.SavedCities(ctx, client, cfg)
	if err != nil {
		log.Fatalf("Failed to load saved cities: %v", err)
	}

	// The default coordinate stands in for the device's current location.
	locations := []models.Location{
		{Name: "Current location", Coord: &models.Coordinate{Lat: cfg.DefaultLat, Lon: cfg.DefaultLon}},
	}
	for _, city := range cities {
		locations = append(locations, models.Location{Name: city})
	}

	results := weatherSvc.FetchAll(ctx, chans, locations)
	for _, result := range results {
		if result.Err != nil {
			logger.Error("[%d] %s: %v", result.Index, result.Location.Name, result.Err)
			continue
		}
		w := result.Weather
		logger.Info("[%d] %s, %s: %s, %s, clouds %s, humidity %s, wind %s %s",
			result.Index, w.City, w.Country, w.Temperature, w.MainDescription,
			w.Cloudiness, w.Humidity, w.WindSpeed, w.WindDirection)
	}

	sections, err := weatherSvc.FiveDayForecast(ctx, models.Coordinate{Lat: cfg.DefaultLat, Lon: cfg.DefaultLon})
	if err != nil {
		logger.Error("Failed to load 5-day forecast: %v", err)
	} else {
		for _, section := range sections {
			logger.Info("%s: %d forecasts", section.Day(), len(section.Forecasts))
			for _, f := range section.Forecasts {
				logger.Info("  %s %d°C %s", f.Time, f.Temp, f.Description)
			}
		}
	}

	wp.Stop()
	chans.WG.Wait()
	logger.Info("Done.")
}
