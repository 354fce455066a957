package state

// Status names the player's current state.
type Status int

const (
	// Stopped is the initial state.
	Stopped Status = iota
	// Playing is entered from Stopped or Paused via Play.
	Playing
	// Paused is entered from Playing via Pause.
	Paused
)

// String returns the state name.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// behavior is implemented by each concrete state. The set is closed.
type behavior interface {
	start()
	pause()
	stop()
	status() Status
}
