package state_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvpatterns/state"
	"github.com/stretchr/testify/assert"
)

func TestNewPlayer_StartsStopped(t *testing.T) {
	p := state.NewPlayer(&bytes.Buffer{}, "vlc")
	assert.Equal(t, state.Stopped, p.Status())
	assert.Equal(t, "vlc", p.Name())
}

// TestTransitions drives every cell of the transition table from a fresh
// player placed in the given state.
func TestTransitions(t *testing.T) {
	// prepare moves a fresh player into s.
	prepare := func(p *state.Player, s state.Status) {
		switch s {
		case state.Playing:
			p.Play()
		case state.Paused:
			p.Play()
			p.Pause()
		}
	}

	cases := []struct {
		from state.Status
		op   string
		to   state.Status
		line string
	}{
		{state.Stopped, "play", state.Playing, "Starting the player x"},
		{state.Stopped, "pause", state.Stopped, "Cannot pause. Player is stopped x"},
		{state.Stopped, "stop", state.Stopped, "Already stopped x"},
		{state.Playing, "play", state.Playing, "player start playing x"},
		{state.Playing, "pause", state.Paused, "player already playing x"},
		{state.Playing, "stop", state.Stopped, "Stopping the player x"},
		{state.Paused, "play", state.Playing, "Resuming the player x"},
		{state.Paused, "pause", state.Paused, "Already paused x"},
		{state.Paused, "stop", state.Stopped, "Stopping the player from pause x"},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"/"+tc.op, func(t *testing.T) {
			var buf bytes.Buffer
			p := state.NewPlayer(&buf, "x")
			prepare(p, tc.from)
			assert.Equal(t, tc.from, p.Status())
			buf.Reset()

			switch tc.op {
			case "play":
				p.Play()
			case "pause":
				p.Pause()
			case "stop":
				p.Stop()
			}

			assert.Equal(t, tc.to, p.Status())
			assert.Equal(t, tc.line+"\n", buf.String())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Stopped", state.Stopped.String())
	assert.Equal(t, "Playing", state.Playing.String())
	assert.Equal(t, "Paused", state.Paused.String())
	assert.Equal(t, "Unknown", state.Status(42).String())
}
