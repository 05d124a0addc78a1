package cli

import (
	"errors"

	"github.com/rshade/headway/internal/advisor"
)

// IsConfigurationError reports whether err was caused by an invalid
// calibration, including an unknown preset.
func IsConfigurationError(err error) bool {
	return errors.Is(err, advisor.ErrInvalidConfiguration) || errors.Is(err, advisor.ErrUnknownPreset)
}
