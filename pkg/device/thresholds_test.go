package device_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/swipekit/pkg/device"
)

func TestThresholds_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		t       device.Thresholds
		wantErr bool
	}{
		{name: "default", t: device.DefaultThresholds},
		{name: "relaxed", t: device.RelaxedThresholds},
		{name: "zero", t: device.Thresholds{}, wantErr: true},
		{name: "negative velocity", t: device.Thresholds{MobileDistance: 10, DesktopDistance: 20, MobileVelocity: -1, DesktopVelocity: 1}, wantErr: true},
		{name: "mobile distance above desktop", t: device.Thresholds{MobileDistance: 200, DesktopDistance: 100, MobileVelocity: 0.1, DesktopVelocity: 0.5}, wantErr: true},
		{name: "mobile velocity above desktop", t: device.Thresholds{MobileDistance: 50, DesktopDistance: 100, MobileVelocity: 0.9, DesktopVelocity: 0.5}, wantErr: true},
		{name: "equal values", t: device.Thresholds{MobileDistance: 80, DesktopDistance: 80, MobileVelocity: 0.4, DesktopVelocity: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.t.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, device.ErrInvalidThresholds)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestThresholdsForProfile(t *testing.T) {
	t.Parallel()

	got, err := device.ThresholdsForProfile("")
	require.NoError(t, err)
	assert.Equal(t, device.DefaultThresholds, got)

	got, err = device.ThresholdsForProfile(device.ProfileRelaxed)
	require.NoError(t, err)
	assert.Equal(t, device.RelaxedThresholds, got)

	_, err = device.ThresholdsForProfile("tablet")
	assert.ErrorIs(t, err, device.ErrUnknownProfile)
}

func TestParseThresholds(t *testing.T) {
	t.Parallel()

	t.Run("empty document selects default", func(t *testing.T) {
		t.Parallel()
		got, err := device.ParseThresholds(nil)
		require.NoError(t, err)
		assert.Equal(t, device.DefaultThresholds, got)
	})

	t.Run("profile with overrides", func(t *testing.T) {
		t.Parallel()
		got, err := device.ParseThresholds([]byte("profile: relaxed\ndesktop_distance: 120\ndesktop_velocity: 0.6\n"))
		require.NoError(t, err)
		assert.Equal(t, device.Thresholds{
			MobileDistance:  50,
			DesktopDistance: 120,
			MobileVelocity:  0.3,
			DesktopVelocity: 0.6,
		}, got)
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()
		_, err := device.ParseThresholds([]byte("profile: watch\n"))
		assert.ErrorIs(t, err, device.ErrUnknownProfile)
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Parallel()
		_, err := device.ParseThresholds([]byte("mobile_distance: 500\n"))
		assert.ErrorIs(t, err, device.ErrInvalidThresholds)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := device.ParseThresholds([]byte("mobile_distance: [\n"))
		assert.ErrorIs(t, err, device.ErrInvalidThresholds)
	})
}

func TestLoadThresholds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: default\nmobile_distance: 40\n"), 0o600))

	got, err := device.LoadThresholds(path)
	require.NoError(t, err)
	assert.Equal(t, 40, got.MobileDistance)
	assert.Equal(t, device.DefaultThresholds.DesktopDistance, got.DesktopDistance)

	_, err = device.LoadThresholds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, device.ErrReadThresholds)
}
