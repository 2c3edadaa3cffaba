package media

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by media. Errors carry context through %w
// wrapping; test for them with errors.Is.
var (
	// ErrInvalidArgument is returned for nil or out-of-range arguments.
	ErrInvalidArgument = errors.New("media: invalid argument")

	// ErrNilPen is returned when an operation that needs a pen gets nil.
	ErrNilPen = fmt.Errorf("%w: nil pen", ErrInvalidArgument)

	// ErrNilURI is returned when a profile URI is empty.
	ErrNilURI = fmt.Errorf("%w: empty profile URI", ErrInvalidArgument)

	// ErrInvalidOperation is returned when an operation does not apply to
	// the receiver's current state, such as setting an RGB channel on a
	// color bound to a CMYK profile.
	ErrInvalidOperation = errors.New("media: invalid operation")

	// ErrNotSupported is returned for pixel formats without a standard
	// color profile.
	ErrNotSupported = errors.New("media: not supported")

	// ErrProfileNotFound is returned when a user-specified profile cannot
	// be fetched.
	ErrProfileNotFound = errors.New("media: color profile not found")

	// ErrDimensionMismatch is returned when a channel array does not match
	// the channel count of its color profile.
	ErrDimensionMismatch = errors.New("media: dimension mismatch")

	// ErrColorContextMismatch is returned by color arithmetic on operands
	// bound to different color profiles.
	ErrColorContextMismatch = errors.New("media: color context mismatch")

	// ErrMalformedData is returned for profile bytes that are too large or
	// fail to parse.
	ErrMalformedData = errors.New("media: malformed profile data")

	// ErrNilProfile is returned when the profile stream of a context that
	// never loaded a profile is requested.
	ErrNilProfile = errors.New("media: profile not initialized")

	// ErrFrozen is returned when a frozen object is modified.
	ErrFrozen = errors.New("media: object is frozen")

	// ErrBadNumber is the geometry engine status for NaN or infinite values
	// met during tessellation. Geometry queries absorb it and return their
	// empty result.
	ErrBadNumber = errors.New("media: bad number in geometry")
)

// DimensionMismatchError reports a channel array whose length differs from
// the channel count of the color profile.
type DimensionMismatchError struct {
	Got  int
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("media: dimension mismatch: got %d channels, profile has %d", e.Got, e.Want)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
