package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindDirection(t *testing.T) {
	tests := []struct {
		name     string
		degrees  int
		expected string
	}{
		{"North", 0, "N"},
		{"NorthHighBoundary", 11, "N"},
		{"NNELowBoundary", 12, "NNE"},
		{"NNE", 22, "NNE"},
		{"NE", 45, "NE"},
		{"East", 90, "E"},
		{"SE", 135, "SE"},
		{"South", 180, "S"},
		{"SW", 225, "SW"},
		{"West", 270, "W"},
		{"NW", 315, "NW"},
		{"NNW", 337, "NNW"},
		{"WrapBackToNorth", 350, "N"},
		{"FullCircle", 360, "N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindDirection(tt.degrees))
		})
	}
}

// Every degree in [0,360) must land on one of the 16 labels; the sector
// around each multiple of 22.5 belongs to that point's label.
func TestWindDirection_Sweep(t *testing.T) {
	labels := make(map[string]bool)
	for d := 0; d < 360; d++ {
		labels[WindDirection(d)] = true
	}
	assert.Len(t, labels, 16)
	for d := 0; d < 360; d++ {
		expected := compassPoints[int(float64(d)/22.5+0.5)%16]
		require.Equal(t, expected, WindDirection(d), "degrees=%d", d)
	}
}

func TestMetersPerSecondToKmh(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"NegativeFailsSoft", -1, "-"},
		{"Zero", 0, "0 km/h"},
		{"Ten", 10, "36 km/h"},
		{"Five", 5, "18 km/h"},
		{"FractionRoundedToThreeDecimals", 3.511, "12.64 km/h"},
		{"TrailingZerosStripped", 2.5, "9 km/h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MetersPerSecondToKmh(tt.input))
		})
	}
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		found    bool
	}{
		{"UnitedKingdom", "GB", "United Kingdom", true},
		{"Georgia", "GE", "Georgia", true},
		{"France", "FR", "France", true},
		{"Unrecognized", "not-a-code", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CountryName(tt.code)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDayAndTime(t *testing.T) {
	tests := []struct {
		name         string
		unixSeconds  int64
		offset       int
		expectedDay  string
		expectedTime string
	}{
		{"EpochUTC", 0, 0, "THURSDAY", "00:00"},
		{"EpochPlusOneHourOffset", 0, 3600, "THURSDAY", "01:00"},
		{"OffsetCrossesDayBackward", 0, -3600, "WEDNESDAY", "23:00"},
		{"OffsetCrossesDayForward", 82800, 3600, "FRIDAY", "00:00"},
		{"TbilisiOffset", 1740222000, 4 * 3600, "SATURDAY", "15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, day, timeOfDay := DayAndTime(tt.unixSeconds, tt.offset)
			assert.Equal(t, tt.unixSeconds, instant.Unix())
			assert.Equal(t, tt.expectedDay, day)
			assert.Equal(t, tt.expectedTime, timeOfDay)
		})
	}
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://openweathermap.org/img/wn/04d@2x.png", IconURL("04d"))
}
