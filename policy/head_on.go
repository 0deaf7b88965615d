package policy

import (
	"math"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/simulation"
)

const PolicyIDHeadOn = "strikepod:head_on"

// HeadOn shields when the predicted impact is near-frontal and fast: a
// glancing or slow touch costs less momentum than a tick of zero thrust, a
// hard head-on does not.
type HeadOn struct {
	base

	angleThreshold float64
	speedThreshold float64
}

func NewHeadOn(angleThreshold, speedThreshold float64) *HeadOn {
	p := &HeadOn{
		angleThreshold: angleThreshold,
		speedThreshold: speedThreshold,
	}
	p.Type = "HeadOn"
	p.Desc = "Shields against fast, near-frontal collisions."
	return p
}

func (p *HeadOn) ID() string {
	return PolicyIDHeadOn
}

func (p *HeadOn) Description() string {
	return p.Desc
}

func (p *HeadOn) Evaluate(self, other *pod.Pod, pred simulation.Prediction) Decision {
	if !pred.Collides {
		return Decision{}
	}

	headingDiff := math.Abs(game.NormalizeDegrees(other.HeadingDegrees - self.HeadingDegrees))
	relSpeed := other.Velocity.Sub(self.Velocity).Len()

	if headingDiff <= p.angleThreshold || relSpeed <= p.speedThreshold {
		return Decision{}
	}

	dat := orderedmap.NewOrderedMap[string, any]()
	dat.Set("heading_diff", game.Round64(headingDiff, 2))
	dat.Set("rel_speed", game.Round64(relSpeed, 2))
	dat.Set("other", other.ID)
	return Decision{Shield: true, Data: dat}
}
