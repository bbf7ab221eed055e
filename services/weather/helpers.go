package weather

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	iconURLPrefix = "https://openweathermap.org/img/wn/"
	iconURLSuffix = "@2x.png"
)

// 16-point compass rose, 22.5° per sector, round-half-up. Degrees are taken
// as already wrapped into [0,360).
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func WindDirection(degrees int) string {
	index := int(float64(degrees)/22.5+0.5) % 16
	return compassPoints[index]
}

// MetersPerSecondToKmh renders a wind speed as "<value> km/h", rounded to 3
// decimal places with trailing zeros stripped. Negative input fails soft to
// the "-" placeholder.
func MetersPerSecondToKmh(metersPerSecond float64) string {
	if metersPerSecond < 0 {
		return "-"
	}
	speed := metersPerSecond * 3.6
	finalValue := math.Round(speed*1000) / 1000
	return strconv.FormatFloat(finalValue, 'f', -1, 64) + " km/h"
}

// CountryName resolves an ISO country code to its English display name.
// Unrecognized codes report false, not an error.
func CountryName(code string) (string, bool) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}

// DayAndTime derives the instant, the uppercase English day-of-week label and
// the HH:mm label for a unix timestamp, all in the given fixed UTC offset
// rather than the local timezone.
func DayAndTime(unixSeconds int64, utcOffsetSeconds int) (time.Time, string, string) {
	zone := time.FixedZone("", utcOffsetSeconds)
	t := time.Unix(unixSeconds, 0).In(zone)

	dayOfWeek := strings.ToUpper(t.Format("Monday"))
	timeOfDay := t.Format("15:04")

	return t, dayOfWeek, timeOfDay
}

// IconURL builds the bitmap URL for a weather icon code. The core only hands
// out the string; fetching the asset is the UI's concern.
func IconURL(icon string) string {
	return iconURLPrefix + icon + iconURLSuffix
}
