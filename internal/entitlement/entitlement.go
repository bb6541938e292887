// Package entitlement resolves the user's purchase tier. The implementation
// is chosen once at startup: Disabled when in-app purchase is switched off,
// KeyringProvider otherwise.
package entitlement

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/99designs/keyring"

	"github.com/nhle/check-me-out/internal/model"
)

var (
	// ErrUnavailable is returned by every purchase operation when in-app
	// purchase is disabled.
	ErrUnavailable = errors.New("entitlement: in-app purchase unavailable")

	ErrUnknownProduct = errors.New("entitlement: unknown product")
)

// ProductPremium is the one-time premium unlock.
const ProductPremium = "com.checkmeout.premium"

// Provider grants and reports entitlements.
type Provider interface {
	// Tier returns the tier currently owned.
	Tier(ctx context.Context) (model.Permission, error)

	// Upgrade records a purchase of product and returns the resulting tier.
	Upgrade(ctx context.Context, product string) (model.Permission, error)

	// Restore re-reads previous purchases and returns the resulting tier.
	Restore(ctx context.Context) (model.Permission, error)
}

// Disabled is the Provider used when in-app purchase is off. Tier reports
// FREE so the app stays usable.
type Disabled struct{}

func (Disabled) Tier(context.Context) (model.Permission, error) {
	return model.PermissionFree, nil
}

func (Disabled) Upgrade(context.Context, string) (model.Permission, error) {
	return model.PermissionFree, ErrUnavailable
}

func (Disabled) Restore(context.Context) (model.Permission, error) {
	return model.PermissionFree, ErrUnavailable
}

// New selects the provider for the given feature switch. ring is only used
// when enabled.
func New(enabled bool, ring keyring.Keyring, log *zap.Logger) Provider {
	if !enabled || ring == nil {
		return Disabled{}
	}
	return NewKeyringProvider(ring, log)
}
