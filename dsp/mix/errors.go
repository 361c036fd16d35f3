package mix

import "errors"

var (
	// ErrBlockAlignment is returned when the sample count is not a multiple
	// of BlockWidth.
	ErrBlockAlignment = errors.New("mix: sample count must be a multiple of 4")

	// ErrNegativeLength is returned for a negative sample count.
	ErrNegativeLength = errors.New("mix: sample count must not be negative")

	// ErrShortBuffer is returned when src or dst cannot hold the requested
	// number of samples.
	ErrShortBuffer = errors.New("mix: buffer too short")

	// ErrInvalidGain is returned by NewMixer for NaN or infinite gains.
	ErrInvalidGain = errors.New("mix: gain must be finite")

	// ErrUnknownKernel is returned when a kernel name is not registered.
	ErrUnknownKernel = errors.New("mix: unknown kernel")

	// ErrUnsupportedKernel is returned when a kernel needs CPU features the
	// running machine lacks.
	ErrUnsupportedKernel = errors.New("mix: kernel not supported on this CPU")
)
