package weather

import (
	"math"
	"time"
)

// Forecast is the display record for one 3-hour forecast slot. Day and Time
// are rendered in the forecast city's UTC offset. Date stays nil when no
// instant is known; the grouping engine never reorders past such an entry.
type Forecast struct {
	Description string
	Icon        string
	Temp        int
	Time        string
	Day         string
	Date        *time.Time
}

func NewForecast() Forecast {
	return Forecast{
		Description: "-",
		Icon:        "-",
		Time:        "-",
		Day:         "-",
	}
}

func (f *Forecast) configure(slot *ForecastSlot, city *City) {
	description, icon := "", ""
	if len(slot.Weather) > 0 {
		if slot.Weather[0].Description != nil {
			description = *slot.Weather[0].Description
		}
		if slot.Weather[0].Icon != nil {
			icon = *slot.Weather[0].Icon
		}
	}
	f.Description = description
	f.Icon = icon

	f.Temp = int(math.Round(slot.Main.Temp))

	date, day, timeOfDay := DayAndTime(slot.Dt, city.Timezone)
	f.Date = &date
	f.Day = day
	f.Time = timeOfDay
}
