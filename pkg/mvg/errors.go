package mvg

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStationFound is returned when a location search yields no station.
	ErrNoStationFound = errors.New("no station found")
	// ErrNoStationName is returned when a location has no displayable station name.
	ErrNoStationName = errors.New("no station name found")
)

// NetworkError wraps transport failures and unexpected HTTP status codes.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a payload that does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// missingField is the error carried by a DecodeError for absent required keys.
func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
