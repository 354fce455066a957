package state

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Player is the context object. Its behavior is whatever its current
// state does.
type Player struct {
	name    string
	current behavior
	out     io.Writer
}

// NewPlayer returns a Stopped player called name printing to w (nil → stdout).
func NewPlayer(w io.Writer, name string) *Player {
	p := &Player{name: name, out: w}
	p.current = stoppedState{p: p}

	return p
}

// Name returns the player name.
func (p *Player) Name() string { return p.name }

// Status reports the current state.
func (p *Player) Status() Status { return p.current.status() }

// Play delegates to the current state's start.
func (p *Player) Play() { p.current.start() }

// Pause delegates to the current state's pause.
func (p *Player) Pause() { p.current.pause() }

// Stop delegates to the current state's stop.
func (p *Player) Stop() { p.current.stop() }

func (p *Player) set(b behavior) { p.current = b }

func (p *Player) say(msg string) { console.Println(p.out, msg+" "+p.name) }

// Demo walks a player through every row of the transition table.
func Demo(w io.Writer) {
	p := NewPlayer(w, "Spotify")
	p.Pause()
	p.Stop()
	p.Play()
	p.Play()
	p.Pause()
	p.Pause()
	p.Play()
	p.Pause()
	p.Stop()
	p.Play()
	p.Stop()
}
