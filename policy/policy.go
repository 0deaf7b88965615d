// Package policy holds the shield trigger heuristics. A policy looks at one
// flagged pod pair and decides whether spending this tick on SHIELD beats
// thrusting through the impact. The exact thresholds are tunables, not
// contracts; both implemented policies are selectable through config.
package policy

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/simulation"
)

// Decision is the outcome of evaluating one predicted collision.
type Decision struct {
	// Shield is true when the pod should spend the tick shielding.
	Shield bool
	// Data carries structured fields describing why, for logging.
	Data *orderedmap.OrderedMap[string, any]
}

// ShieldPolicy decides whether a pod should shield against a predicted
// collision with another pod.
type ShieldPolicy interface {
	// ID returns a stable identifier for the policy, e.g. "strikepod:head_on".
	ID() string
	// Description returns what the policy protects against.
	Description() string

	// Evaluate inspects a flagged pair from self's perspective. It must not
	// mutate either pod.
	Evaluate(self, other *pod.Pod, pred simulation.Prediction) Decision
}

// base contains common fields shared by all policies.
type base struct {
	Type string
	Desc string
}
