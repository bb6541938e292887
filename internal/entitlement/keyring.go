package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/99designs/keyring"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
)

const (
	serviceName = "checkmeout"
	grantKey    = "entitlement"
)

// OpenKeyring returns the OS keyring, falling back to an encrypted file
// store under dir.
func OpenKeyring(dir string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  filepath.Join(dir, "entitlements"),
		FilePasswordFunc:         keyring.FixedStringPrompt("checkmeout-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// grant is the record kept in the keyring after a purchase.
type grant struct {
	Product   string `json:"product"`
	GrantedAt int64  `json:"grantedAt"`
}

// KeyringProvider keeps granted entitlements in a keyring.
type KeyringProvider struct {
	ring keyring.Keyring
	now  func() time.Time
	log  *zap.Logger
}

func NewKeyringProvider(ring keyring.Keyring, log *zap.Logger) *KeyringProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &KeyringProvider{ring: ring, now: time.Now, log: log.Named("entitlement")}
}

func (p *KeyringProvider) Tier(_ context.Context) (model.Permission, error) {
	item, err := p.ring.Get(grantKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return model.PermissionFree, nil
	}
	if err != nil {
		return model.PermissionFree, fmt.Errorf("reading entitlement: %w", err)
	}

	var g grant
	if err := json.Unmarshal(item.Data, &g); err != nil {
		p.log.Warn("discarding unreadable entitlement", zap.Error(err))
		return model.PermissionFree, nil
	}
	if g.Product != ProductPremium {
		return model.PermissionFree, nil
	}
	return model.PermissionPremium, nil
}

func (p *KeyringProvider) Upgrade(ctx context.Context, product string) (model.Permission, error) {
	if product != ProductPremium {
		return model.PermissionFree, fmt.Errorf("%w: %q", ErrUnknownProduct, product)
	}

	data, err := json.Marshal(grant{Product: product, GrantedAt: model.Millis(p.now())})
	if err != nil {
		return model.PermissionFree, err
	}
	err = p.ring.Set(keyring.Item{
		Key:         grantKey,
		Data:        data,
		Label:       "Check Me Out entitlement",
		Description: "premium unlock",
	})
	if err != nil {
		return model.PermissionFree, fmt.Errorf("storing entitlement: %w", err)
	}

	p.log.Info("entitlement granted", zap.String("product", product))
	return p.Tier(ctx)
}

func (p *KeyringProvider) Restore(ctx context.Context) (model.Permission, error) {
	return p.Tier(ctx)
}

// Revoke removes a stored entitlement. Removing a missing one is not an
// error.
func (p *KeyringProvider) Revoke(_ context.Context) error {
	err := p.ring.Remove(grantKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("deleting entitlement: %w", err)
	}
	return nil
}
