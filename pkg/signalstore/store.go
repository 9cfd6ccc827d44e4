package signalstore

import (
	"context"
	"errors"

	"github.com/dmitrymomot/swipekit/pkg/device"
)

var (
	ErrNotFound      = errors.New("signals not found")
	ErrEmptyClientID = errors.New("empty client id")
	ErrStoreFailure  = errors.New("signal store failure")
)

// Store persists reported device signals per client.
type Store interface {
	Save(ctx context.Context, clientID string, sig device.Signals) error
	Get(ctx context.Context, clientID string) (device.Signals, error)
	Delete(ctx context.Context, clientID string) error
}
