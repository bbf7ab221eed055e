package weather

// Wire types for the three OpenWeatherMap endpoint shapes. Optional fields
// are pointers; required fields are validated against the raw payload in
// decode.go so a missing key can be named in the error detail.

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type WeatherCondition struct {
	ID          *int    `json:"id"`
	Main        string  `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// Main carries the measurement block shared by the current-weather and
// forecast payloads. Several fields use snake_case wire names.
type Main struct {
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  int      `json:"pressure"`
	SeaLevel  *int     `json:"sea_level"`
	GrndLevel *int     `json:"grnd_level"`
	Humidity  int      `json:"humidity"`
	TempKf    *float64 `json:"temp_kf"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust"`
}

type Clouds struct {
	All *int `json:"all"`
}

// One-hour precipitation amounts are keyed "1h" on the wire.
type CurrentRain struct {
	OneH *float64 `json:"1h"`
}

type CurrentSnow struct {
	OneH *float64 `json:"1h"`
}

// Three-hour precipitation amounts are keyed "3h" on the wire.
type Rain struct {
	ThreeH *float64 `json:"3h"`
}

type Snow struct {
	ThreeH *float64 `json:"3h"`
}

type Sys struct {
	Type    int     `json:"type"`
	ID      int     `json:"id"`
	Message *string `json:"message"`
	Country string  `json:"country"`
	Sunrise *int64  `json:"sunrise"`
	Sunset  *int64  `json:"sunset"`
}

type CurrentWeatherResponse struct {
	Coord      Coord              `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Base       string             `json:"base"`
	Main       Main               `json:"main"`
	Visibility *int               `json:"visibility"`
	Wind       Wind               `json:"wind"`
	Rain       *CurrentRain       `json:"rain"`
	Snow       *CurrentSnow       `json:"snow"`
	Clouds     Clouds             `json:"clouds"`
	Dt         int64              `json:"dt"`
	Sys        Sys                `json:"sys"`
	Timezone   int                `json:"timezone"`
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Cod        int                `json:"cod"`
}

type SlotSys struct {
	Pod *string `json:"pod"`
}

// ForecastSlot is one 3-hour forecast sample.
type ForecastSlot struct {
	Dt         int64              `json:"dt"`
	Main       Main               `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Clouds     Clouds             `json:"clouds"`
	Wind       Wind               `json:"wind"`
	Visibility *int               `json:"visibility"`
	Pop        float64            `json:"pop"`
	Rain       *Rain              `json:"rain"`
	Snow       *Snow              `json:"snow"`
	Sys        SlotSys            `json:"sys"`
	DtTxt      string             `json:"dt_txt"`
}

// City is the metadata block shared by all slots of one forecast response.
// Timezone is the city's offset from UTC in seconds; every slot's day and
// time labels are derived in that offset, not the device's zone.
type City struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	Country    string `json:"country"`
	Population *int   `json:"population"`
	Timezone   int    `json:"timezone"`
	Sunrise    *int64 `json:"sunrise"`
	Sunset     *int64 `json:"sunset"`
}

type ForecastResponse struct {
	Cod     string         `json:"cod"`
	Message int            `json:"message"`
	Cnt     *int           `json:"cnt"`
	List    []ForecastSlot `json:"list"`
	City    City           `json:"city"`
}

// LocationResponse is one geocoding match.
type LocationResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   *string `json:"state"`
}
