package weather

import "sort"

type ForecastHeader struct {
	Day string
}

// ForecastSection is one day bucket: a header plus its member forecasts in
// chronological order.
type ForecastSection struct {
	Header    ForecastHeader
	Forecasts []Forecast
}

func (s *ForecastSection) Day() string {
	return s.Header.Day
}

// GroupForecastsIntoSections buckets forecasts by day label into ordered
// sections. Entries are stable-sorted by instant first; an entry without an
// instant is never reordered relative to anything. Section order follows the
// first occurrence of each day label in the sorted stream, so sections come
// out in chronological order, one per distinct label. Every input entry lands
// in exactly one section.
//
// The bucket key is the weekday name, not a calendar date: entries a whole
// number of weeks apart share a section. A 5-day window cannot produce that
// input; a wider window would need a (year, ordinal-day) key instead.
func GroupForecastsIntoSections(forecasts []Forecast) []*ForecastSection {
	sorted := make([]Forecast, len(forecasts))
	copy(sorted, forecasts)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		if a == nil || b == nil {
			// Keep original order if dates are missing
			return false
		}
		return a.Before(*b)
	})

	grouped := make(map[string][]Forecast)
	var orderedDays []string

	for _, forecast := range sorted {
		if _, seen := grouped[forecast.Day]; !seen {
			orderedDays = append(orderedDays, forecast.Day)
		}
		grouped[forecast.Day] = append(grouped[forecast.Day], forecast)
	}

	sections := make([]*ForecastSection, 0, len(orderedDays))
	for _, day := range orderedDays {
		sections = append(sections, &ForecastSection{
			Header:    ForecastHeader{Day: day},
			Forecasts: grouped[day],
		})
	}
	return sections
}
