package advisor

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is().
var (
	// ErrInvalidConfiguration indicates calibration constants that break the
	// ordering invariant (minSpeed < maxSpeed, minFactor < maxFactor) or are
	// otherwise unusable. It is only ever returned when a Calibration is built.
	ErrInvalidConfiguration = constError("invalid calibration configuration")

	// ErrInvalidUnit indicates an unrecognized speed or distance unit.
	ErrInvalidUnit = constError("invalid unit")

	// ErrUnknownPreset indicates a calibration preset name that does not exist.
	ErrUnknownPreset = constError("unknown calibration preset")

	// ErrInvalidRange indicates a speed sweep with a bad step or bounds.
	ErrInvalidRange = constError("invalid speed range")
)
