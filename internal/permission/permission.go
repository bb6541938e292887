// Package permission gates quota- and tier-restricted operations.
package permission

import (
	"errors"
	"fmt"

	"github.com/nhle/check-me-out/internal/model"
)

// Unlimited marks a limit that does not apply.
const Unlimited = -1

var (
	// ErrLimitReached signals that a free-tier quota is exhausted and the
	// caller should offer an upgrade.
	ErrLimitReached = errors.New("permission: limit reached")

	// ErrPremiumRequired signals a capability only available on PREMIUM.
	ErrPremiumRequired = errors.New("permission: premium required")
)

// Resource names the quota a LimitError refers to.
type Resource string

const (
	ResourceChecklist Resource = "checklist"
	ResourceGroup     Resource = "group"
)

// LimitError reports which quota was hit. It matches ErrLimitReached.
type LimitError struct {
	Resource Resource
	Limit    int
	Tier     model.Permission
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s limit of %d on %s tier", ErrLimitReached, e.Resource, e.Limit, e.Tier)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrLimitReached
}

// Limits holds the free-tier quotas.
type Limits struct {
	FreeChecklistCount int
	FreeGroupCount     int
}

// DefaultLimits mirrors the shipped free tier: one checklist per group and
// two groups.
func DefaultLimits() Limits {
	return Limits{FreeChecklistCount: 1, FreeGroupCount: 2}
}

// LimitsFromConfig converts configured quotas, falling back to defaults for
// non-positive values.
func LimitsFromConfig(cfg model.LimitsConfig) Limits {
	l := DefaultLimits()
	if cfg.FreeChecklistCount > 0 {
		l.FreeChecklistCount = cfg.FreeChecklistCount
	}
	if cfg.FreeGroupCount > 0 {
		l.FreeGroupCount = cfg.FreeGroupCount
	}
	return l
}

func IsPremium(tier model.Permission) bool {
	return tier == model.PermissionPremium
}

// CanCreateChecklist reports whether one more checklist may be created given
// currentCount existing ones.
func (l Limits) CanCreateChecklist(currentCount int, tier model.Permission) bool {
	if IsPremium(tier) {
		return true
	}
	return currentCount < l.FreeChecklistCount
}

// CanCreateGroup reports whether one more group may be created given
// currentCount existing ones.
func (l Limits) CanCreateGroup(currentCount int, tier model.Permission) bool {
	if IsPremium(tier) {
		return true
	}
	return currentCount < l.FreeGroupCount
}

// ChecklistLimit returns the checklist quota for tier, or Unlimited.
func (l Limits) ChecklistLimit(tier model.Permission) int {
	if IsPremium(tier) {
		return Unlimited
	}
	return l.FreeChecklistCount
}

// GroupLimit returns the group quota for tier, or Unlimited.
func (l Limits) GroupLimit(tier model.Permission) int {
	if IsPremium(tier) {
		return Unlimited
	}
	return l.FreeGroupCount
}

// CheckChecklistQuota returns a *LimitError when creation is not allowed.
func (l Limits) CheckChecklistQuota(currentCount int, tier model.Permission) error {
	if l.CanCreateChecklist(currentCount, tier) {
		return nil
	}
	return &LimitError{Resource: ResourceChecklist, Limit: l.FreeChecklistCount, Tier: tier}
}

// CheckGroupQuota returns a *LimitError when creation is not allowed.
func (l Limits) CheckGroupQuota(currentCount int, tier model.Permission) error {
	if l.CanCreateGroup(currentCount, tier) {
		return nil
	}
	return &LimitError{Resource: ResourceGroup, Limit: l.FreeGroupCount, Tier: tier}
}

// CanCreateChecklist applies the default limits.
func CanCreateChecklist(currentCount int, tier model.Permission) bool {
	return DefaultLimits().CanCreateChecklist(currentCount, tier)
}

// CanCreateGroup applies the default limits.
func CanCreateGroup(currentCount int, tier model.Permission) bool {
	return DefaultLimits().CanCreateGroup(currentCount, tier)
}

// CanImportTemplate is an all-or-nothing capability gate.
func CanImportTemplate(tier model.Permission) bool {
	return IsPremium(tier)
}

// CanUseCloudSync reports whether tier may sync checklists across devices.
func CanUseCloudSync(tier model.Permission) bool {
	return IsPremium(tier)
}

// RequirePremium returns ErrPremiumRequired unless tier is PREMIUM.
func RequirePremium(tier model.Permission) error {
	if IsPremium(tier) {
		return nil
	}
	return ErrPremiumRequired
}
