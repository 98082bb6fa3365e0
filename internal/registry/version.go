package registry

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// RuleSetVersion is the version of the question tables and condition catalogs
const RuleSetVersion = "1.4.0"

// ErrRuleSetMismatch signals case data recorded against an incompatible rule set
var ErrRuleSetMismatch = errors.New("rule set version mismatch")

// CheckCompatible accepts an empty version or any version of the running
// major line that is not newer than RuleSetVersion.
func CheckCompatible(v string) error {
	if v == "" {
		return nil
	}

	recorded, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: invalid version %q: %v", ErrRuleSetMismatch, v, err)
	}

	current := semver.MustParse(RuleSetVersion)
	constraint, err := semver.NewConstraint(fmt.Sprintf("^%d.0.0, <= %s", current.Major(), current))
	if err != nil {
		return fmt.Errorf("building version constraint: %w", err)
	}

	if !constraint.Check(recorded) {
		return fmt.Errorf("%w: case recorded with %s, running %s", ErrRuleSetMismatch, recorded, current)
	}
	return nil
}
