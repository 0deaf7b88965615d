// Package game holds the shared vocabulary of the race: the simulator's
// physics constants, the command type emitted for each pod and the small
// angle helpers everything else leans on.
package game

import "strconv"

// CommandKind discriminates the three propulsion commands a pod can emit.
type CommandKind int

const (
	CommandThrust CommandKind = iota
	CommandBoost
	CommandShield
)

// Command is one propulsion decision. The zero value is a zero-power thrust,
// which is always safe to emit.
type Command struct {
	Kind  CommandKind
	Power int
}

// Thrust builds a numeric thrust command, clamped to [0, MaxThrust].
func Thrust(power int) Command {
	if power < 0 {
		power = 0
	}
	if power > MaxThrust {
		power = MaxThrust
	}
	return Command{Kind: CommandThrust, Power: power}
}

// Boost builds the one-shot acceleration command.
func Boost() Command {
	return Command{Kind: CommandBoost}
}

// Shield builds the defensive command. The simulator locks thrust for
// ShieldLockTicks afterwards.
func Shield() Command {
	return Command{Kind: CommandShield}
}

// String encodes the command the way the wire protocol expects it.
func (c Command) String() string {
	switch c.Kind {
	case CommandBoost:
		return "BOOST"
	case CommandShield:
		return "SHIELD"
	default:
		return strconv.Itoa(c.Power)
	}
}
