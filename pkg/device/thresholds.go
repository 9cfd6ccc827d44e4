package device

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the swipe tuning handed to gesture recognizers.
// Distances are CSS pixels, velocities are pixels per millisecond.
type Thresholds struct {
	MobileDistance  int     `json:"mobile_distance" yaml:"mobile_distance" env:"MOBILE_DISTANCE" envDefault:"30"`
	DesktopDistance int     `json:"desktop_distance" yaml:"desktop_distance" env:"DESKTOP_DISTANCE" envDefault:"100"`
	MobileVelocity  float64 `json:"mobile_velocity" yaml:"mobile_velocity" env:"MOBILE_VELOCITY" envDefault:"0.2"`
	DesktopVelocity float64 `json:"desktop_velocity" yaml:"desktop_velocity" env:"DESKTOP_VELOCITY" envDefault:"0.5"`
}

var (
	// DefaultThresholds favours fast recognition on mobile.
	DefaultThresholds = Thresholds{
		MobileDistance:  30,
		DesktopDistance: 100,
		MobileVelocity:  0.2,
		DesktopVelocity: 0.5,
	}

	// RelaxedThresholds requires longer, faster swipes on mobile. Some clients
	// were tuned with these values; select it explicitly for them.
	RelaxedThresholds = Thresholds{
		MobileDistance:  50,
		DesktopDistance: 100,
		MobileVelocity:  0.3,
		DesktopVelocity: 0.5,
	}
)

// Validate checks that all values are positive and that mobile values do not
// exceed desktop ones.
func (t Thresholds) Validate() error {
	switch {
	case t.MobileDistance <= 0 || t.DesktopDistance <= 0:
		return fmt.Errorf("%w: distances must be positive", ErrInvalidThresholds)
	case t.MobileVelocity <= 0 || t.DesktopVelocity <= 0:
		return fmt.Errorf("%w: velocities must be positive", ErrInvalidThresholds)
	case t.MobileDistance > t.DesktopDistance:
		return fmt.Errorf("%w: mobile distance %d exceeds desktop distance %d",
			ErrInvalidThresholds, t.MobileDistance, t.DesktopDistance)
	case t.MobileVelocity > t.DesktopVelocity:
		return fmt.Errorf("%w: mobile velocity %g exceeds desktop velocity %g",
			ErrInvalidThresholds, t.MobileVelocity, t.DesktopVelocity)
	}
	return nil
}

// ThresholdsForProfile returns the built-in thresholds registered under name.
// An empty name selects the default profile.
func ThresholdsForProfile(name string) (Thresholds, error) {
	switch name {
	case "", ProfileDefault:
		return DefaultThresholds, nil
	case ProfileRelaxed:
		return RelaxedThresholds, nil
	}
	return Thresholds{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// thresholdsFile is the YAML layout: a base profile plus optional overrides.
type thresholdsFile struct {
	Profile         string   `yaml:"profile"`
	MobileDistance  *int     `yaml:"mobile_distance"`
	DesktopDistance *int     `yaml:"desktop_distance"`
	MobileVelocity  *float64 `yaml:"mobile_velocity"`
	DesktopVelocity *float64 `yaml:"desktop_velocity"`
}

// ParseThresholds decodes a YAML thresholds document:
//
//	profile: relaxed
//	desktop_distance: 120
//
// The result is validated before it is returned.
func ParseThresholds(data []byte) (Thresholds, error) {
	var f thresholdsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Thresholds{}, errors.Join(ErrInvalidThresholds, err)
	}

	t, err := ThresholdsForProfile(f.Profile)
	if err != nil {
		return Thresholds{}, err
	}
	if f.MobileDistance != nil {
		t.MobileDistance = *f.MobileDistance
	}
	if f.DesktopDistance != nil {
		t.DesktopDistance = *f.DesktopDistance
	}
	if f.MobileVelocity != nil {
		t.MobileVelocity = *f.MobileVelocity
	}
	if f.DesktopVelocity != nil {
		t.DesktopVelocity = *f.DesktopVelocity
	}

	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// LoadThresholds reads and parses a YAML thresholds file.
func LoadThresholds(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, errors.Join(ErrReadThresholds, err)
	}
	return ParseThresholds(data)
}
