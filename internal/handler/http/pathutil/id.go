package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when a path identifier is not a positive int64.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a decimal article id taken from a URL path segment.
//
// The router only hands over digit strings, so the failure cases left here
// are values that overflow int64 and zero. Both return ErrInvalidID.
//
// Example:
//
//	id, err := ParseID("123")
//	// Returns: 123, nil
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
