// Package strikepod wires the protocol transport and the per-match session
// into a runnable racing agent.
package strikepod

import (
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/protocol"
	"github.com/strikepod/strikepod/session"
)

// Agent runs one match over a line-oriented feed: read the setup block, then
// loop telemetry in, commands out, until the feed closes. The decision path
// is synchronous; the only I/O per tick is the read that starts it and the
// buffered write that ends it.
type Agent struct {
	log    zerolog.Logger
	tuning config.Tuning

	in  io.Reader
	out io.Writer
}

// NewAgent builds an agent reading telemetry from in and emitting commands
// to out.
func NewAgent(in io.Reader, out io.Writer, tuning config.Tuning, log zerolog.Logger) *Agent {
	return &Agent{log: log, tuning: tuning, in: in, out: out}
}

// Run plays a single match to completion. A closed feed ends the match
// normally; anything else is a protocol violation and is returned as-is.
func (a *Agent) Run() error {
	r := protocol.NewReader(a.in)
	w := protocol.NewWriter(a.out)

	laps, checkpoints, err := r.ReadSetup()
	if err != nil {
		return err
	}
	c, err := course.New(laps, checkpoints)
	if err != nil {
		return err
	}
	s, err := session.New(c, a.tuning, a.log)
	if err != nil {
		return err
	}

	for tick := 0; ; tick++ {
		telemetry, err := r.ReadTick()
		if errors.Is(err, io.EOF) {
			a.log.Info().Int("ticks", tick).Msg("feed closed, match over")
			return nil
		}
		if err != nil {
			return err
		}

		start := time.Now()
		out := s.Tick(telemetry)
		if err := w.WriteOutputs(out); err != nil {
			return err
		}
		a.log.Debug().Int("tick", tick).Dur("took", time.Since(start)).
			Str("cmd0", out[0].Command.String()).Str("cmd1", out[1].Command.String()).
			Msg("tick decided")
	}
}
