// Package session orchestrates one match: it owns the four tracked pods,
// folds each tick's telemetry into them and turns the two owned pods' state
// into the two emitted commands.
package session

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/strikepod/strikepod/assert"
	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/planner"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/policy"
	"github.com/strikepod/strikepod/simulation"
)

// PodCount is the number of pods tracked per match: two owned, two opponent.
const PodCount = 4

// Output is one emitted command tuple: the rounded steering target and the
// propulsion command.
type Output struct {
	Target  mgl64.Vec2
	Command game.Command
}

// Session carries all per-match state. It has a single writer per tick and
// no internal concurrency: Tick must complete before the next telemetry
// block arrives.
type Session struct {
	log    zerolog.Logger
	course *course.Course

	pods      *orderedmap.OrderedMap[int, *pod.Pod]
	planner   *planner.Planner
	predictor *simulation.Predictor
	shield    policy.ShieldPolicy

	tick int
}

// New builds a session for one match on the given course. Pods are
// registered in protocol order: ids 0 and 1 are owned, 2 and 3 opponent.
func New(c *course.Course, t config.Tuning, log zerolog.Logger) (*Session, error) {
	shield, err := policy.ForName(t)
	if err != nil {
		return nil, err
	}

	pods := orderedmap.NewOrderedMap[int, *pod.Pod]()
	for id := 0; id < PodCount; id++ {
		role := pod.RoleOwned
		if id >= 2 {
			role = pod.RoleOpponent
		}
		pods.Set(id, pod.New(id, role))
	}

	log.Info().
		Int("checkpoints", c.Count()).
		Int("laps", c.Laps()).
		Int("boost_checkpoint", c.BoostCheckpoint()).
		Str("shield_policy", shield.ID()).
		Uint64("course", c.Fingerprint()).
		Msg("session started")

	return &Session{
		log:       log,
		course:    c,
		pods:      pods,
		planner:   planner.New(c, t),
		predictor: simulation.NewPredictor(t.LookaheadTicks),
		shield:    shield,
	}, nil
}

// Pod returns the tracked pod with the given id.
func (s *Session) Pod(id int) *pod.Pod {
	p, ok := s.pods.Get(id)
	assert.IsTrue(ok, "session: unknown pod id %d", id)
	return p
}

// Tick runs one full simulation tick: fold telemetry for all four pods, then
// decide for both owned pods. The returned outputs are in fixed emission
// order, pod 0 before pod 1.
func (s *Session) Tick(telemetry [PodCount]pod.Telemetry) [2]Output {
	s.update(telemetry)

	var out [2]Output
	i := 0
	for el := s.pods.Front(); el != nil; el = el.Next() {
		p := el.Value
		if p.Role != pod.RoleOwned {
			continue
		}
		out[i] = s.decide(p)
		i++
	}

	s.tick++
	return out
}

// update folds this tick's telemetry into all four pods. Every pod goes
// through the same fold regardless of role.
func (s *Session) update(telemetry [PodCount]pod.Telemetry) {
	for el := s.pods.Front(); el != nil; el = el.Next() {
		p := el.Value
		prevLap := p.Lap
		p.ApplyTelemetry(telemetry[p.ID], s.course)
		if p.Lap != prevLap {
			s.log.Info().Int("pod", p.ID).Int("lap", p.Lap).Int("tick", s.tick).Msg("lap completed")
		}
	}
}

// decide runs the per-pod state machine for one owned pod: plan thrust,
// check collisions against the three other pods, let the shield policy
// override the command for opponent impacts, then compute the aim point.
func (s *Session) decide(p *pod.Pod) Output {
	cmd := s.planner.Plan(p)

	for el := s.pods.Front(); el != nil; el = el.Next() {
		other := el.Value
		if other.ID == p.ID {
			continue
		}

		pred := s.predictor.Predict(p, other)
		if !pred.Collides {
			continue
		}

		if other.Role == pod.RoleOwned {
			// Teammate contact is observed but never shielded against.
			s.log.Debug().Int("pod", p.ID).Int("teammate", other.ID).
				Float64("distance", pred.Distance).Int("tick", s.tick).
				Msg("teammate contact predicted")
			continue
		}

		if p.ShieldThisTick {
			continue
		}

		d := s.shield.Evaluate(p, other, pred)
		if !d.Shield {
			continue
		}

		cmd = game.Shield()
		p.ShieldThisTick = true
		fresh := p.ConsumeShield()

		ev := s.log.Debug().Int("pod", p.ID).Int("opponent", other.ID).
			Bool("fresh", fresh).Int("tick", s.tick).Str("policy", s.shield.ID())
		if d.Data != nil {
			for f := d.Data.Front(); f != nil; f = f.Next() {
				ev = ev.Interface(f.Key, f.Value)
			}
		}
		ev.Msg("shield raised")
	}

	p.Planned = cmd
	return Output{Target: s.planner.Aim(p), Command: cmd}
}
