package weather

import (
	"math"
	"strconv"
)

// CurrentWeather is the display record for one city's current conditions.
// Every field is always populated — unavailable data falls back to the
// placeholder sentinels — so rendering never needs nil checks.
type CurrentWeather struct {
	City            string
	Country         string
	Temperature     string
	MainDescription string
	Cloudiness      string
	Humidity        string
	WindSpeed       string
	WindDirection   string
	Icon            string
}

func NewCurrentWeather() CurrentWeather {
	return CurrentWeather{
		City:            "--",
		Country:         "--",
		Temperature:     "--",
		MainDescription: "Unknown",
		Cloudiness:      "-",
		Humidity:        "-",
		WindSpeed:       "-",
		WindDirection:   "-",
		Icon:            "-",
	}
}

func (w *CurrentWeather) configure(response *CurrentWeatherResponse) {
	w.City = response.Name

	if name, ok := CountryName(response.Sys.Country); ok {
		w.Country = name
	} else {
		w.Country = ""
	}

	w.Temperature = strconv.Itoa(int(math.Round(response.Main.Temp))) + "°C"

	if len(response.Weather) > 0 {
		w.MainDescription = response.Weather[0].Main
		if response.Weather[0].Icon != nil {
			w.Icon = *response.Weather[0].Icon
		} else {
			w.Icon = "-"
		}
	}

	cloudiness := "-"
	if response.Clouds.All != nil {
		cloudiness = strconv.Itoa(*response.Clouds.All)
	}
	w.Cloudiness = cloudiness + "%"

	w.Humidity = strconv.Itoa(response.Main.Humidity) + "%"
	w.WindSpeed = MetersPerSecondToKmh(response.Wind.Speed)
	w.WindDirection = WindDirection(response.Wind.Deg)
}
