package command

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// TV is the receiver every command acts on.
type TV struct {
	out    io.Writer
	on     bool
	volume int
}

// NewTV returns a TV that is off, volume 0, printing to w (nil → stdout).
func NewTV(w io.Writer) *TV {
	return &TV{out: w}
}

// TurnOn switches the TV on.
func (t *TV) TurnOn() {
	t.on = true
	console.Println(t.out, "TV is turned on")
}

// TurnOff switches the TV off.
func (t *TV) TurnOff() {
	t.on = false
	console.Println(t.out, "TV is turned off")
}

// VolumeUp raises the volume by one.
func (t *TV) VolumeUp() {
	t.volume++
	console.Printf(t.out, "TV volume up to %d", t.volume)
}

// On reports whether the TV is switched on.
func (t *TV) On() bool { return t.on }

// Volume reports the current volume.
func (t *TV) Volume() int { return t.volume }
