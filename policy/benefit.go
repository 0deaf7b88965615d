package policy

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/simulation"
)

const PolicyIDBenefit = "strikepod:benefit"

// Benefit scores a predicted collision by how much the impulse exchange
// advances the pod along its route. When the projected reduction in
// distance-to-target falls below the decrement threshold the impact is a
// setback worth absorbing with a shield.
type Benefit struct {
	base

	decrementThreshold float64
}

func NewBenefit(decrementThreshold float64) *Benefit {
	p := &Benefit{decrementThreshold: decrementThreshold}
	p.Type = "Benefit"
	p.Desc = "Shields against collisions that push the pod backward along its route."
	return p
}

func (p *Benefit) ID() string {
	return PolicyIDBenefit
}

func (p *Benefit) Description() string {
	return p.Desc
}

func (p *Benefit) Evaluate(self, other *pod.Pod, pred simulation.Prediction) Decision {
	if !pred.Collides {
		return Decision{}
	}

	afterSelf, _ := simulation.Resolve(self.Position, other.Position, self.Velocity, other.Velocity)

	// Projected next-tick distance to target with and without the impact.
	free := self.Position.Add(self.Velocity.Mul(game.FrictionFactor))
	hit := self.Position.Add(afterSelf.Mul(game.FrictionFactor))

	freeDist := free.Sub(self.CheckpointPos).Len()
	hitDist := hit.Sub(self.CheckpointPos).Len()
	score := freeDist - hitDist

	if score >= p.decrementThreshold {
		return Decision{}
	}

	dat := orderedmap.NewOrderedMap[string, any]()
	dat.Set("score", game.Round64(score, 2))
	dat.Set("other", other.ID)
	return Decision{Shield: true, Data: dat}
}
