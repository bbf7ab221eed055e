package weather

import (
	"context"
	"sync"

	"github.com/Tsiqara/WeatherApp/internal/channels"
	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/Tsiqara/WeatherApp/models"
)

// CityResult is the outcome of one location's fetch. Exactly one of Weather
// or Err is meaningful; Weather keeps its placeholder sentinels on failure.
type CityResult struct {
	Index    int
	Location models.Location
	Weather  CurrentWeather
	Err      error
}

// FetchAll fetches current weather for every location through the worker
// pool. Each request writes only its own slice slot, keyed by submission
// index, so completions may land in any order. Locations without a
// coordinate are geocoded first.
func (s *Service) FetchAll(ctx context.Context, chans *channels.Channels, locations []models.Location) []CityResult {
	logger.Info("Fetching weather for %d locations", len(locations))

	results := make([]CityResult, len(locations))

	var wg sync.WaitGroup
	for i, loc := range locations {
		i, loc := i, loc
		results[i] = CityResult{Index: i, Location: loc, Weather: NewCurrentWeather()}

		wg.Add(1)
		chans.Requests <- models.CityRequest{
			Index:   i,
			Service: "weather",
			Run: func(ctx context.Context) error {
				defer wg.Done()
				record, err := s.locationWeather(ctx, loc)
				results[i].Weather = record
				results[i].Err = err
				return err
			},
		}
	}
	wg.Wait()

	return results
}

func (s *Service) locationWeather(ctx context.Context, loc models.Location) (CurrentWeather, error) {
	coord := loc.Coord
	if coord == nil {
		matches, err := s.Geocode(ctx, loc.Name)
		if err != nil {
			return NewCurrentWeather(), err
		}
		coord = &models.Coordinate{Lat: matches[0].Lat, Lon: matches[0].Lon}
	}
	return s.CurrentWeather(ctx, *coord)
}
