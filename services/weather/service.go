package weather

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Tsiqara/WeatherApp/internal/api"
	"github.com/Tsiqara/WeatherApp/internal/config"
	"github.com/Tsiqara/WeatherApp/models"
)

const (
	currentWeatherPath = "/weather"
	forecastPath       = "/forecast"
	geocodingPath      = "/direct"

	metricUnits = "metric"
)

// Service is the fetch client: three single-shot operations, each resolving
// to either a payload or one ServiceError. Every returned non-nil error is a
// *ServiceError.
type Service struct {
	Config *config.Config
	Client *api.Client
}

func NewService(cfg *config.Config) *Service {
	rlSettings := models.RateLimitSettings{
		MaxRequests: 30,
		PerDuration: time.Minute,
	}
	client := api.NewClient(rlSettings)

	return &Service{
		Config: cfg,
		Client: client,
	}
}

func (s *Service) weatherURL(path string, coord models.Coordinate) string {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	query.Set("appid", s.Config.WeatherAPIKey)
	query.Set("units", metricUnits)
	return s.Config.WeatherAPIBaseURL + path + "?" + query.Encode()
}

func (s *Service) geocodingURL(city string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("limit", "1")
	query.Set("appid", s.Config.WeatherAPIKey)
	return s.Config.GeocodingAPIBaseURL + geocodingPath + "?" + query.Encode()
}

// statusError maps a completed round trip to the error taxonomy. nil means
// the 200 body may be decoded.
func statusError(resp *api.Response) *ServiceError {
	if resp == nil {
		return ErrInvalidResponse
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrNotAuthorized
	case http.StatusNotFound:
		return ErrPageNotFound
	default:
		return ErrInvalidRequest
	}
}

// CurrentWeather fetches and shapes the current conditions at a coordinate.
func (s *Service) CurrentWeather(ctx context.Context, coord models.Coordinate) (CurrentWeather, error) {
	record := NewCurrentWeather()

	resp, err := s.Client.Do(ctx, s.weatherURL(currentWeatherPath, coord), nil)
	if err != nil {
		return record, ErrBadConnection
	}
	if serr := statusError(resp); serr != nil {
		return record, serr
	}

	result, serr := decodeCurrentWeather(resp.Body)
	if serr != nil {
		return record, serr
	}

	record.configure(result)
	return record, nil
}

// FiveDayForecast fetches the 3-hour forecast slots for a coordinate and
// groups them into day sections. A forecast that groups into zero sections
// is a city-not-found, not an empty success.
func (s *Service) FiveDayForecast(ctx context.Context, coord models.Coordinate) ([]*ForecastSection, error) {
	resp, err := s.Client.Do(ctx, s.weatherURL(forecastPath, coord), nil)
	if err != nil {
		return nil, ErrBadConnection
	}
	if serr := statusError(resp); serr != nil {
		return nil, serr
	}

	result, serr := decodeForecast(resp.Body)
	if serr != nil {
		return nil, serr
	}

	forecasts := make([]Forecast, 0, len(result.List))
	for i := range result.List {
		forecast := NewForecast()
		forecast.configure(&result.List[i], &result.City)
		forecasts = append(forecasts, forecast)
	}

	sections := GroupForecastsIntoSections(forecasts)
	if len(sections) == 0 {
		return nil, ErrCityNotFound
	}
	return sections, nil
}

// Geocode resolves a free-text city name to location matches. An empty match
// list normalizes to city-not-found.
func (s *Service) Geocode(ctx context.Context, city string) ([]LocationResponse, error) {
	resp, err := s.Client.Do(ctx, s.geocodingURL(city), nil)
	if err != nil {
		return nil, ErrBadConnection
	}
	if serr := statusError(resp); serr != nil {
		return nil, serr
	}

	locations, serr := decodeLocations(resp.Body)
	if serr != nil {
		return nil, serr
	}
	if len(locations) == 0 {
		return nil, ErrCityNotFound
	}
	return locations, nil
}
