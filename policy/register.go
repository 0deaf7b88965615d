package policy

import (
	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/serror"
	"github.com/strikepod/strikepod/simulation"
)

// ForName builds the shield policy named in the tuning. Known names are
// "headon", "benefit" and "none"; "none" disables shielding entirely, which
// is a legitimate configuration for time-trial style tuning runs.
func ForName(t config.Tuning) (ShieldPolicy, error) {
	switch t.ShieldPolicy {
	case "headon":
		return NewHeadOn(t.HeadOnAngle, t.HeadOnSpeed), nil
	case "benefit":
		return NewBenefit(t.BenefitDecrement), nil
	case "none":
		return nopPolicy{}, nil
	default:
		return nil, serror.New("policy: unknown shield policy %q", t.ShieldPolicy)
	}
}

type nopPolicy struct{}

func (nopPolicy) ID() string          { return "strikepod:none" }
func (nopPolicy) Description() string { return "Never shields." }

func (nopPolicy) Evaluate(self, other *pod.Pod, pred simulation.Prediction) Decision {
	return Decision{}
}
