package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastAt(t time.Time, temp int) Forecast {
	f := NewForecast()
	f.Temp = temp
	f.Date = &t
	f.Day = dayLabel(t)
	f.Time = t.UTC().Format("15:04")
	return f
}

func dayLabel(t time.Time) string {
	_, day, _ := DayAndTime(t.Unix(), 0)
	return day
}

func TestGroupForecastsIntoSections_Empty(t *testing.T) {
	assert.Empty(t, GroupForecastsIntoSections(nil))
	assert.Empty(t, GroupForecastsIntoSections([]Forecast{}))
}

func TestGroupForecastsIntoSections_Partition(t *testing.T) {
	base := time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC)

	var forecasts []Forecast
	for i := 0; i < 40; i++ {
		forecasts = append(forecasts, forecastAt(base.Add(time.Duration(i)*3*time.Hour), i))
	}

	sections := GroupForecastsIntoSections(forecasts)

	total := 0
	seen := make(map[int]int)
	for _, section := range sections {
		total += len(section.Forecasts)
		for _, f := range section.Forecasts {
			seen[f.Temp]++
		}
	}

	assert.Equal(t, len(forecasts), total, "sections must partition the input")
	for i := 0; i < len(forecasts); i++ {
		assert.Equal(t, 1, seen[i], "entry %d must appear exactly once", i)
	}
	// 40 slots * 3h = 5 full days
	assert.Len(t, sections, 5)
}

func TestGroupForecastsIntoSections_ChronologicalOrderRegardlessOfInput(t *testing.T) {
	saturday := time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 2, 23, 9, 0, 0, 0, time.UTC)

	// Sunday entries first in the input
	forecasts := []Forecast{
		forecastAt(sunday.Add(3*time.Hour), 3),
		forecastAt(sunday, 2),
		forecastAt(saturday.Add(3*time.Hour), 1),
		forecastAt(saturday, 0),
	}

	sections := GroupForecastsIntoSections(forecasts)
	require.Len(t, sections, 2)

	assert.Equal(t, "SATURDAY", sections[0].Day())
	assert.Equal(t, "SUNDAY", sections[1].Day())

	// Within a section, entries are chronological
	assert.Equal(t, []Forecast{forecasts[3], forecasts[2]}, sections[0].Forecasts)
	assert.Equal(t, []Forecast{forecasts[1], forecasts[0]}, sections[1].Forecasts)
}

// The bucket key is the weekday name: entries exactly one week apart merge
// into a single section. A 5-day window never produces this input, but the
// behavior is pinned here.
func TestGroupForecastsIntoSections_SameWeekdayCollides(t *testing.T) {
	saturday := time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC)
	nextSaturday := saturday.AddDate(0, 0, 7)

	sections := GroupForecastsIntoSections([]Forecast{
		forecastAt(nextSaturday, 1),
		forecastAt(saturday, 0),
	})

	require.Len(t, sections, 1)
	assert.Equal(t, "SATURDAY", sections[0].Day())
	assert.Len(t, sections[0].Forecasts, 2)
	assert.Equal(t, 0, sections[0].Forecasts[0].Temp, "earlier Saturday sorts first")
}

// An entry with no instant must never be reordered relative to its
// neighbors, and still lands in exactly one section.
func TestGroupForecastsIntoSections_MissingInstantKeepsPosition(t *testing.T) {
	saturday := time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC)

	dateless := NewForecast()
	dateless.Day = "-"
	dateless.Temp = 99

	forecasts := []Forecast{
		forecastAt(saturday.Add(3*time.Hour), 1),
		dateless,
		forecastAt(saturday, 0),
	}

	sections := GroupForecastsIntoSections(forecasts)

	total := 0
	var days []string
	for _, section := range sections {
		total += len(section.Forecasts)
		days = append(days, section.Day())
	}
	assert.Equal(t, 3, total)
	assert.Contains(t, days, "-")

	// The comparator reports no order against the dateless entry, so the two
	// dated entries on either side of it must keep their input order.
	require.Equal(t, []string{"SATURDAY", "-"}, days)
	saturdaySection := sections[0]
	assert.Equal(t, []int{1, 0}, []int{saturdaySection.Forecasts[0].Temp, saturdaySection.Forecasts[1].Temp})
}
