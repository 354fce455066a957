package command

import "io"

// Remote is the invoker.
type Remote struct {
	armed   Command
	history []Command // stack; top is the last element
}

// NewRemote returns a Remote with nothing armed and empty history.
func NewRemote() *Remote {
	return &Remote{}
}

// SetCommand arms c for the next PressButton.
func (r *Remote) SetCommand(c Command) {
	r.armed = c
}

// PressButton pushes the armed command onto the history and executes it.
func (r *Remote) PressButton() error {
	if r.armed == nil {
		return ErrNoCommand
	}
	r.history = append(r.history, r.armed)
	r.armed.Execute()

	return nil
}

// Undo pops the top of history and re-executes the new top.
// Nothing happens when history is empty or the pop empties it.
func (r *Remote) Undo() {
	if len(r.history) == 0 {
		return
	}
	r.history[len(r.history)-1] = nil
	r.history = r.history[:len(r.history)-1]
	if len(r.history) == 0 {
		return
	}
	r.history[len(r.history)-1].Execute()
}

// History returns a copy of the history stack, bottom first.
func (r *Remote) History() []Command {
	out := make([]Command, len(r.history))
	copy(out, r.history)

	return out
}

// Demo arms TurnOn and VolumeUp on two separate TVs, presses each, then undoes.
func Demo(w io.Writer) {
	remote := NewRemote()
	remote.SetCommand(NewTurnOnCommand(NewTV(w)))
	_ = remote.PressButton()
	remote.SetCommand(NewVolumeUpCommand(NewTV(w)))
	_ = remote.PressButton()
	remote.Undo()
}
