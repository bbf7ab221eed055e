package weather

// ErrorCode enumerates every failure the weather service (or the UI layer
// sitting on top of it) can surface. The set is closed: callers switch over
// codes and render one uniform error surface.
type ErrorCode int

const (
	CodeInvalidResponse ErrorCode = iota + 1
	CodeBadConnection
	CodeInvalidRequest
	CodeNotAuthorized
	CodeCityNotFound
	CodePageNotFound
	CodeLocationNotShared
	CodeCurrentLocationNotAvailable
	CodeDecodingError
)

// ServiceError is the one error type the service returns. Detail is only set
// for decoding errors.
type ServiceError struct {
	Code   ErrorCode
	Detail string
}

func (e *ServiceError) Error() string {
	switch e.Code {
	case CodeInvalidResponse:
		return "Invalid Response"
	case CodeBadConnection:
		return "Bad Connection"
	case CodeInvalidRequest:
		return "Invalid Request"
	case CodeNotAuthorized:
		return "Not Authorized"
	case CodeCityNotFound:
		return "City with this name was not found"
	case CodePageNotFound:
		return "Page not found"
	case CodeLocationNotShared:
		return "Location not shared."
	case CodeCurrentLocationNotAvailable:
		return "Current location not available."
	case CodeDecodingError:
		return "Decoding Error " + e.Detail
	default:
		return "Unknown error"
	}
}

// Is matches by code so errors.Is(err, ErrCityNotFound) works regardless of
// the Detail payload.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidResponse             = &ServiceError{Code: CodeInvalidResponse}
	ErrBadConnection               = &ServiceError{Code: CodeBadConnection}
	ErrInvalidRequest              = &ServiceError{Code: CodeInvalidRequest}
	ErrNotAuthorized               = &ServiceError{Code: CodeNotAuthorized}
	ErrCityNotFound                = &ServiceError{Code: CodeCityNotFound}
	ErrPageNotFound                = &ServiceError{Code: CodePageNotFound}
	ErrLocationNotShared           = &ServiceError{Code: CodeLocationNotShared}
	ErrCurrentLocationNotAvailable = &ServiceError{Code: CodeCurrentLocationNotAvailable}
)

func NewDecodingError(detail string) *ServiceError {
	return &ServiceError{Code: CodeDecodingError, Detail: detail}
}
