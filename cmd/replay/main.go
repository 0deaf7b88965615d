// Command replay renders a recorded arena match in the terminal.
// Space pauses, the arrow keys step, q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/strikepod/strikepod/replay"
)

// World bounds of the race arena.
const (
	worldW = 16000.0
	worldH = 9000.0
)

type viewer struct {
	screen tcell.Screen
	header replay.Header
	frames []replay.Frame

	frame  int
	paused bool
}

func main() {
	delay := flag.Duration("delay", 60*time.Millisecond, "time between frames")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay [-delay 60ms] <replay file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	header, frames, err := replay.Read(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintln(os.Stderr, "replay holds no frames")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, header: header, frames: frames}
	v.run(*delay)
}

func (v *viewer) run(delay time.Duration) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		v.draw()
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					v.paused = !v.paused
				case ev.Key() == tcell.KeyRight:
					v.step(1)
				case ev.Key() == tcell.KeyLeft:
					v.step(-1)
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			if !v.paused {
				v.step(1)
			}
		}
	}
}

func (v *viewer) step(d int) {
	v.frame += d
	if v.frame < 0 {
		v.frame = 0
	}
	if v.frame >= len(v.frames) {
		v.frame = len(v.frames) - 1
		v.paused = true
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if h > 1 {
		h-- // bottom row is the status line
	}

	scale := func(x, y float64) (int, int) {
		return int(x / worldW * float64(w-1)), int(y / worldH * float64(h-1))
	}

	cpStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, cp := range v.header.Checkpoints {
		x, y := scale(cp[0], cp[1])
		v.setContent(x, y, rune('0'+i%10), cpStyle)
	}

	fr := v.frames[v.frame]
	for i, p := range fr.Pods {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if i >= 2 {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		x, y := scale(p.X, p.Y)
		v.setContent(x, y, rune('A'+i), style.Bold(true))
	}

	status := fmt.Sprintf(" tick %d/%d  course %x  [space] pause  [arrows] step  [q] quit",
		fr.Tick, v.frames[len(v.frames)-1].Tick, v.header.Fingerprint)
	for i, r := range status {
		if i >= w {
			break
		}
		v.setContent(i, h, r, tcell.StyleDefault.Reverse(true))
	}

	v.screen.Show()
}

func (v *viewer) setContent(x, y int, r rune, style tcell.Style) {
	v.screen.SetContent(x, y, r, nil, style)
}
