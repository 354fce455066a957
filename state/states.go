package state

// stoppedState: Play starts, Pause is rejected, Stop is a no-op.
type stoppedState struct{ p *Player }

func (s stoppedState) start() {
	s.p.say("Starting the player")
	s.p.set(playingState{p: s.p})
}

func (s stoppedState) pause() { s.p.say("Cannot pause. Player is stopped") }

func (s stoppedState) stop() { s.p.say("Already stopped") }

func (stoppedState) status() Status { return Stopped }

// playingState: Play is a no-op, Pause pauses, Stop stops.
type playingState struct{ p *Player }

func (s playingState) start() { s.p.say("player start playing") }

func (s playingState) pause() {
	s.p.say("player already playing")
	s.p.set(pausedState{p: s.p})
}

func (s playingState) stop() {
	s.p.say("Stopping the player")
	s.p.set(stoppedState{p: s.p})
}

func (playingState) status() Status { return Playing }

// pausedState: Play resumes, Pause is a no-op, Stop stops.
type pausedState struct{ p *Player }

func (s pausedState) start() {
	s.p.say("Resuming the player")
	s.p.set(playingState{p: s.p})
}

func (s pausedState) pause() { s.p.say("Already paused") }

func (s pausedState) stop() {
	s.p.say("Stopping the player from pause")
	s.p.set(stoppedState{p: s.p})
}

func (pausedState) status() Status { return Paused }
