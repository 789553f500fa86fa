// Package validate screens scan targets before any external process runs.
//
// The validator only accepts literal addresses and address blocks. Hostnames
// are rejected: a name cannot be checked against the ban list or the range
// cap without resolving it first, and resolution before authorization would
// widen the abuse surface.
package validate

import (
	"net/netip"
	"strings"

	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/ledger"
	"github.com/khanhnv2901/iotscan/internal/shared/constants"
	secerrors "github.com/khanhnv2901/iotscan/internal/shared/errors"
)

// rangeHostBits caps an accepted block at 2^8 = 256 addresses, regardless of
// address family.
const rangeHostBits = 8

type Validator struct {
	banned map[string]struct{}
	ledger *ledger.Ledger
	logger *zap.SugaredLogger
}

func New(led *ledger.Ledger, logger *zap.SugaredLogger) *Validator {
	banned := make(map[string]struct{})
	for _, t := range constants.BannedTargets() {
		banned[t] = struct{}{}
	}
	return &Validator{banned: banned, ledger: led, logger: logger}
}

// Screen validates one request. It returns nil when the request is admitted,
// in which case exactly one ledger entry has been appended; any rejection is
// a *secerrors.RejectionError and appends nothing.
func (v *Validator) Screen(tool, target string) error {
	if err := v.screenTarget(target); err != nil {
		v.logger.Infow("scan request rejected", "tool", tool, "target", target, "reason", err)
		return &secerrors.RejectionError{Target: target, Reason: err}
	}

	// Admission and the ledger append are one atomic unit under the ledger's
	// lock; see ledger.Admit.
	if !v.ledger.Admit(tool, target) {
		v.logger.Infow("scan request rejected", "tool", tool, "target", target, "reason", secerrors.ErrRateLimited)
		return &secerrors.RejectionError{Target: target, Reason: secerrors.ErrRateLimited}
	}
	return nil
}

func (v *Validator) screenTarget(target string) error {
	if target == "" {
		return secerrors.ErrMissingTarget
	}

	if _, ok := v.banned[target]; ok {
		return secerrors.ErrBannedTarget
	}

	if strings.Contains(target, "/") {
		prefix, err := netip.ParsePrefix(target)
		if err != nil {
			return secerrors.ErrInvalidAddress
		}
		if prefix.Addr().BitLen()-prefix.Bits() > rangeHostBits {
			return secerrors.ErrRangeTooLarge
		}
		return nil
	}

	if _, err := netip.ParseAddr(target); err != nil {
		return secerrors.ErrInvalidAddress
	}
	return nil
}
