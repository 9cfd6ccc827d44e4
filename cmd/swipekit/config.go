package main

import (
	"time"

	"github.com/dmitrymomot/swipekit/pkg/device"
	"github.com/dmitrymomot/swipekit/pkg/httpserver"
	"github.com/dmitrymomot/swipekit/pkg/redis"
)

type appConfig struct {
	Name string `env:"APP_NAME" envDefault:"swipekit"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	HTTP  httpserver.Config
	Redis redis.Config

	// ThresholdsFile, when set, replaces the SWIPE_* values.
	ThresholdsFile string            `env:"SWIPE_THRESHOLDS_FILE"`
	Thresholds     device.Thresholds `envPrefix:"SWIPE_"`
	MobileMaxWidth int               `env:"MOBILE_MAX_WIDTH" envDefault:"768"`

	CookieName   string        `env:"CLIENT_COOKIE_NAME" envDefault:"swipekit_cid"`
	CookieTTL    time.Duration `env:"CLIENT_COOKIE_TTL" envDefault:"720h"`
	CookieSecure bool          `env:"CLIENT_COOKIE_SECURE" envDefault:"false"`

	SignalsTTL      time.Duration `env:"SIGNALS_TTL" envDefault:"720h"`
	SignalsCapacity int           `env:"SIGNALS_MEMORY_CAPACITY" envDefault:"10000"`
}

// thresholds resolves the active thresholds: file first, environment otherwise.
func (c appConfig) thresholds() (device.Thresholds, error) {
	if c.ThresholdsFile != "" {
		return device.LoadThresholds(c.ThresholdsFile)
	}
	return c.Thresholds, c.Thresholds.Validate()
}
