package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Decoding distinguishes four failure shapes in the error detail: a missing
// required key (named), a present-but-null required key (named), a type
// mismatch (expected type named), and corrupted input. Anything else
// collapses into a generic detail.

func classifyDecodeError(err error) *ServiceError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return NewDecodingError("Type mismatch for " + typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return NewDecodingError("Corrupted data")
	default:
		return NewDecodingError("Unknown decoding error")
	}
}

type rawObject map[string]json.RawMessage

func parseObject(data []byte) (rawObject, bool) {
	var obj rawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// require reports the first key that is absent or null.
func (o rawObject) require(keys ...string) *ServiceError {
	for _, key := range keys {
		raw, ok := o[key]
		if !ok {
			return NewDecodingError("Missing key: " + key)
		}
		if isNull(raw) {
			return NewDecodingError("Missing value for " + key)
		}
	}
	return nil
}

// requireNested validates required keys inside an object-valued key that is
// already known to be present and non-null.
func (o rawObject) requireNested(key string, fields ...string) *ServiceError {
	nested, ok := parseObject(o[key])
	if !ok {
		// A non-object here would already have failed the struct unmarshal.
		return NewDecodingError("Unknown decoding error")
	}
	return nested.require(fields...)
}

func decodeCurrentWeather(data []byte) (*CurrentWeatherResponse, *ServiceError) {
	var resp CurrentWeatherResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, classifyDecodeError(err)
	}

	root, ok := parseObject(data)
	if !ok {
		return nil, NewDecodingError("Corrupted data")
	}
	if serr := root.require("coord", "weather", "main", "wind", "clouds", "sys", "dt", "name"); serr != nil {
		return nil, serr
	}
	if serr := root.requireNested("main", "temp", "humidity"); serr != nil {
		return nil, serr
	}
	if serr := root.requireNested("wind", "speed", "deg"); serr != nil {
		return nil, serr
	}
	if serr := root.requireNested("sys", "country"); serr != nil {
		return nil, serr
	}

	return &resp, nil
}

func decodeForecast(data []byte) (*ForecastResponse, *ServiceError) {
	var resp ForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, classifyDecodeError(err)
	}

	root, ok := parseObject(data)
	if !ok {
		return nil, NewDecodingError("Corrupted data")
	}
	if serr := root.require("cod", "list", "city"); serr != nil {
		return nil, serr
	}
	if serr := root.requireNested("city", "name", "timezone"); serr != nil {
		return nil, serr
	}

	var slots []json.RawMessage
	if err := json.Unmarshal(root["list"], &slots); err != nil {
		return nil, classifyDecodeError(err)
	}
	for _, raw := range slots {
		slot, ok := parseObject(raw)
		if !ok {
			return nil, NewDecodingError("Unknown decoding error")
		}
		if serr := slot.require("dt", "main", "weather", "dt_txt"); serr != nil {
			return nil, serr
		}
		if serr := slot.requireNested("main", "temp"); serr != nil {
			return nil, serr
		}
	}

	return &resp, nil
}

func decodeLocations(data []byte) ([]LocationResponse, *ServiceError) {
	var locations []LocationResponse
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, classifyDecodeError(err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, classifyDecodeError(err)
	}
	for _, raw := range items {
		item, ok := parseObject(raw)
		if !ok {
			return nil, NewDecodingError("Unknown decoding error")
		}
		if serr := item.require("name", "lat", "lon", "country"); serr != nil {
			return nil, serr
		}
	}

	return locations, nil
}
