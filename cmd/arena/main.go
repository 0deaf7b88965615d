// Command arena races the agent against a simple chaser opponent on an
// offline engine, many matches in parallel, and reports win rate and match
// length statistics. It is the tuning loop for the config thresholds.
package main

import (
	"flag"
	"math"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/replay"
	"github.com/strikepod/strikepod/session"
	"github.com/strikepod/strikepod/simulation"
	"github.com/strikepod/strikepod/smath"
	"github.com/strikepod/strikepod/worker"
)

// maxTicks caps a match; a race that long is scored on checkpoint progress.
const maxTicks = 600

// trackPool holds known circuit layouts the simulator draws from.
var trackPool = [][]mgl64.Vec2{
	{{12460, 1350}, {10540, 5980}, {3580, 5180}, {13580, 7600}},
	{{3600, 5280}, {13840, 5080}, {10680, 2280}, {8700, 7460}, {7200, 2160}},
	{{4560, 2180}, {7350, 4940}, {3320, 7230}, {14580, 7700}, {10560, 5060}, {13100, 2320}},
	{{5010, 5260}, {11480, 6080}, {9100, 1840}},
	{{14660, 1410}, {3450, 7220}, {9420, 7240}, {5970, 4240}},
	{{3640, 4420}, {8000, 7900}, {13300, 5540}, {9560, 1400}},
	{{10323, 3366}, {11203, 5425}, {7259, 6656}, {5425, 2838}},
}

type matchResult struct {
	won   bool
	ticks int
	err   error
}

func main() {
	matches := flag.Int("matches", 100, "number of matches to play")
	laps := flag.Int("laps", 3, "laps per match")
	seed := flag.Int64("seed", 1, "base RNG seed")
	configDir := flag.String("config", ".", "directory containing strikepod.cfg.json")
	record := flag.String("record", "", "record the first match to this replay file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tuning, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}

	results := make([]matchResult, *matches)
	jobs := make([]func(), *matches)
	for i := range jobs {
		i := i
		recordPath := ""
		if i == 0 {
			recordPath = *record
		}
		jobs[i] = func() {
			results[i] = runMatch(*seed+int64(i), *laps, tuning, recordPath)
		}
	}
	worker.SubmitWait(jobs)

	wins := 0
	ticks := make([]float64, 0, len(results))
	for i, r := range results {
		if r.err != nil {
			log.Error().Err(r.err).Int("match", i).Msg("match failed")
			continue
		}
		if r.won {
			wins++
		}
		ticks = append(ticks, float64(r.ticks))
	}

	log.Info().
		Int("matches", len(results)).
		Int("wins", wins).
		Float64("win_rate", game.Round64(float64(wins)/float64(len(results)), 3)).
		Float64("mean_ticks", game.Round64(smath.Mean(ticks), 1)).
		Float64("stddev_ticks", game.Round64(smath.StandardDeviation(ticks), 1)).
		Msg("arena finished")
}

func runMatch(seed int64, laps int, tuning config.Tuning, recordPath string) matchResult {
	rng := rand.New(rand.NewSource(seed))

	layout := trackPool[rng.Intn(len(trackPool))]
	checkpoints := make([]mgl64.Vec2, len(layout))
	for i, cp := range layout {
		checkpoints[i] = mgl64.Vec2{cp.X() + float64(rng.Intn(61)-30), cp.Y() + float64(rng.Intn(61)-30)}
	}

	c, err := course.New(laps, checkpoints)
	if err != nil {
		return matchResult{err: err}
	}
	sess, err := session.New(c, tuning, zerolog.Nop())
	if err != nil {
		return matchResult{err: err}
	}
	eng := simulation.NewEngine(c)

	var rec *replay.Writer
	if recordPath != "" {
		f, err := os.Create(recordPath)
		if err != nil {
			return matchResult{err: err}
		}
		defer f.Close()

		h := replay.Header{Laps: laps, Fingerprint: c.Fingerprint()}
		for _, cp := range checkpoints {
			h.Checkpoints = append(h.Checkpoints, [2]float64{cp.X(), cp.Y()})
		}
		if rec, err = replay.NewWriter(f, h); err != nil {
			return matchResult{err: err}
		}
	}

	finish := laps * c.Count()
	for tick := 0; tick < maxTicks; tick++ {
		outs := sess.Tick(telemetryFrom(eng))

		var moves [4]simulation.Move
		moves[0] = simulation.Move{Target: outs[0].Target, Command: outs[0].Command}
		moves[1] = simulation.Move{Target: outs[1].Target, Command: outs[1].Command}
		moves[2] = chaserMove(eng, c, 2)
		moves[3] = chaserMove(eng, c, 3)

		eng.Step(moves)

		if rec != nil {
			if err := rec.WriteFrame(frameFrom(eng, tick, moves)); err != nil {
				return matchResult{err: err}
			}
		}

		for i := range eng.Pods {
			if eng.Pods[i].Passed >= finish {
				return matchResult{won: i < 2, ticks: tick + 1}
			}
		}
	}

	return matchResult{won: leadingTeam(eng, c) == 0, ticks: maxTicks}
}

// telemetryFrom snapshots the engine into the agent's input format.
func telemetryFrom(eng *simulation.Engine) [session.PodCount]pod.Telemetry {
	var tel [session.PodCount]pod.Telemetry
	for i, p := range eng.Pods {
		tel[i] = pod.Telemetry{
			X:              int(p.Pos.X()),
			Y:              int(p.Pos.Y()),
			VX:             int(p.Vel.X()),
			VY:             int(p.Vel.Y()),
			AngleDegrees:   int(math.Round(p.AngleDegrees)),
			NextCheckpoint: p.Next,
		}
	}
	return tel
}

// chaserMove is the opponent bot: full thrust straight at its checkpoint.
func chaserMove(eng *simulation.Engine, c *course.Course, i int) simulation.Move {
	return simulation.Move{
		Target:  c.Checkpoint(eng.Pods[i].Next),
		Command: game.Thrust(game.MaxThrust),
	}
}

// leadingTeam scores a timed-out match by checkpoints passed, distance to
// the next one breaking ties.
func leadingTeam(eng *simulation.Engine, c *course.Course) int {
	best, bestScore := 0, math.Inf(-1)
	for i, p := range eng.Pods {
		score := float64(p.Passed)*1e6 - smath.Distance(p.Pos, c.Checkpoint(p.Next))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 2 {
		return 0
	}
	return 1
}

func frameFrom(eng *simulation.Engine, tick int, moves [4]simulation.Move) replay.Frame {
	f := replay.Frame{Tick: tick}
	for i, p := range eng.Pods {
		f.Pods[i] = replay.FramePod{
			X:            p.Pos.X(),
			Y:            p.Pos.Y(),
			AngleDegrees: p.AngleDegrees,
			Next:         p.Next,
			Command:      moves[i].Command.String(),
		}
	}
	return f
}
