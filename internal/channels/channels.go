package channels

import (
	"sync"

	"github.com/Tsiqara/WeatherApp/models"
)

type Channels struct {
	Requests chan models.CityRequest
	WG       *sync.WaitGroup
}

func New() *Channels {
	const bufferSize = 100
	return &Channels{
		Requests: make(chan models.CityRequest, bufferSize),
		WG:       &sync.WaitGroup{},
	}
}
