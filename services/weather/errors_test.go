package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"InvalidResponse", ErrInvalidResponse, "Invalid Response"},
		{"BadConnection", ErrBadConnection, "Bad Connection"},
		{"InvalidRequest", ErrInvalidRequest, "Invalid Request"},
		{"NotAuthorized", ErrNotAuthorized, "Not Authorized"},
		{"CityNotFound", ErrCityNotFound, "City with this name was not found"},
		{"PageNotFound", ErrPageNotFound, "Page not found"},
		{"LocationNotShared", ErrLocationNotShared, "Location not shared."},
		{"CurrentLocationNotAvailable", ErrCurrentLocationNotAvailable, "Current location not available."},
		{"Decoding", NewDecodingError("Missing key: main"), "Decoding Error Missing key: main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_IsMatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(NewDecodingError("a"), NewDecodingError("b")),
		"decoding errors match regardless of detail")
	assert.True(t, errors.Is(ErrCityNotFound, ErrCityNotFound))
	assert.False(t, errors.Is(ErrCityNotFound, ErrPageNotFound))
	assert.False(t, errors.Is(errors.New("other"), ErrCityNotFound))
}
