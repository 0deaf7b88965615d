package game

// Physics constants of the race simulator. The agent never integrates these
// into its own authoritative state; they exist to predict what the simulator
// will do one or two ticks ahead.
const (
	// FrictionFactor is the per-tick velocity decay the simulator applies at
	// the end of every turn.
	FrictionFactor = 0.85
	// PodRadius is the radius of a pod's collision disc. Two pods collide
	// when their centers come within 2*PodRadius.
	PodRadius = 400.0
	// CheckpointRadius is the capture radius of a checkpoint. The progress
	// tracker deliberately does not rely on it for advancement (see planner),
	// but the planner brakes relative to it.
	CheckpointRadius = 600.0
	// MaxRotationDegrees is the maximum heading change the simulator allows
	// per tick.
	MaxRotationDegrees = 18.0
	// BoostThrust is the thrust applied by the simulator for a BOOST command.
	BoostThrust = 650
	// ShieldMass is the mass multiplier of a shielded pod during impulse
	// exchange.
	ShieldMass = 10.0
	// ShieldLockTicks is how many ticks the simulator suppresses thrust after
	// a SHIELD command.
	ShieldLockTicks = 4
	// MinImpulse is the floor the simulator applies to the collision impulse
	// magnitude.
	MinImpulse = 120.0
	// MaxThrust is the maximum numeric thrust command.
	MaxThrust = 100
)

// Default tuning values. Every one of these can be overridden through the
// config package; the planner and the shield policies read them from there.
const (
	// DefaultDriftFactor scales the velocity offset subtracted from the raw
	// checkpoint target to counteract momentum overshoot.
	DefaultDriftFactor = 4.0
	// DefaultMinDriftSpeed is the speed below which drift compensation is
	// skipped entirely.
	DefaultMinDriftSpeed = 100.0
	// DefaultMaxBoostAngle is the absolute bearing window inside which a
	// boost may be spent.
	DefaultMaxBoostAngle = 15.0
	// DefaultBrakeDistanceFactor scales CheckpointRadius into the distance at
	// which linear braking begins.
	DefaultBrakeDistanceFactor = 2.0
	// DefaultHeadOnAngle is the heading difference above which a predicted
	// collision counts as head-on rather than glancing.
	DefaultHeadOnAngle = 75.0
	// DefaultHeadOnSpeed is the relative speed above which a head-on
	// collision is worth a shield.
	DefaultHeadOnSpeed = 120.0
	// DefaultBenefitDecrement is the projected route-progress loss below
	// which the benefit policy shields.
	DefaultBenefitDecrement = 10.0
	// DefaultLookaheadTicks is how many ticks the collision predictor
	// projects ahead.
	DefaultLookaheadTicks = 1
)
