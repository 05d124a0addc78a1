// Package track loads recorded speed samples and replays them through an
// advisor, producing per-sample recommendations, regime transitions and a
// summary.
package track

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/headway/internal/advisor"
)

// Track parsing errors.
var (
	ErrEmptyTrack       = errors.New("track has no samples")
	ErrNonMonotonicTime = errors.New("sample times must be non-decreasing")
	ErrInvalidSample    = errors.New("invalid sample")
)

// Sample is one speed reading taken T seconds after the start of the track.
type Sample struct {
	T     float64 `yaml:"t" json:"t"`
	Speed float64 `yaml:"speed" json:"speed"`
}

// Track is a named sequence of speed samples in a single unit.
// YAML and JSON files share the same layout:
//
//	name: commute
//	unit: ms
//	samples:
//	  - {t: 0, speed: 8.3}
//	  - {t: 1, speed: 9.1}
type Track struct {
	Name    string            `yaml:"name" json:"name"`
	Unit    advisor.SpeedUnit `yaml:"unit" json:"unit"`
	Samples []Sample          `yaml:"samples" json:"samples"`
}

// Load reads and parses a track file. A track without a name is named after
// the file.
func Load(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading track %s: %w", path, err)
	}

	tr, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", path, err)
	}
	if tr.Name == "" {
		tr.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return tr, nil
}

// Parse decodes a YAML or JSON track and validates it.
func Parse(data []byte) (*Track, error) {
	var raw struct {
		Name    string   `yaml:"name"`
		Unit    string   `yaml:"unit"`
		Samples []Sample `yaml:"samples"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing track: %w", err)
	}

	unit := advisor.UnitKmh
	if raw.Unit != "" {
		parsed, err := advisor.ParseSpeedUnit(raw.Unit)
		if err != nil {
			return nil, err
		}
		unit = parsed
	}

	tr := &Track{Name: raw.Name, Unit: unit, Samples: raw.Samples}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Validate checks that the track has samples with finite values and
// non-decreasing times. Negative speeds are allowed; the advisor treats them
// as a standstill.
func (t *Track) Validate() error {
	if len(t.Samples) == 0 {
		return ErrEmptyTrack
	}
	for i, s := range t.Samples {
		if math.IsNaN(s.T) || math.IsInf(s.T, 0) || s.T < 0 {
			return fmt.Errorf("%w: sample %d has time %v", ErrInvalidSample, i, s.T)
		}
		if math.IsNaN(s.Speed) || math.IsInf(s.Speed, 0) {
			return fmt.Errorf("%w: sample %d has speed %v", ErrInvalidSample, i, s.Speed)
		}
		if i > 0 && s.T < t.Samples[i-1].T {
			return fmt.Errorf("%w: sample %d at %.3fs follows %.3fs", ErrNonMonotonicTime, i, s.T, t.Samples[i-1].T)
		}
	}
	return nil
}

// Duration returns the time span covered by the samples, in seconds.
func (t *Track) Duration() float64 {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].T - t.Samples[0].T
}
