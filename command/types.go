package command

import "errors"

// ErrNoCommand is returned by PressButton when nothing has been armed.
var ErrNoCommand = errors.New("command: no command armed")

// Command is one encapsulated action.
type Command interface {
	Execute()
}

// TurnOnCommand switches its TV on.
type TurnOnCommand struct{ tv *TV }

// TurnOffCommand switches its TV off.
type TurnOffCommand struct{ tv *TV }

// VolumeUpCommand raises its TV's volume by one step.
type VolumeUpCommand struct{ tv *TV }

// NewTurnOnCommand binds a TurnOnCommand to tv.
func NewTurnOnCommand(tv *TV) *TurnOnCommand { return &TurnOnCommand{tv: tv} }

// NewTurnOffCommand binds a TurnOffCommand to tv.
func NewTurnOffCommand(tv *TV) *TurnOffCommand { return &TurnOffCommand{tv: tv} }

// NewVolumeUpCommand binds a VolumeUpCommand to tv.
func NewVolumeUpCommand(tv *TV) *VolumeUpCommand { return &VolumeUpCommand{tv: tv} }

// Execute implements Command.
func (c *TurnOnCommand) Execute() { c.tv.TurnOn() }

// Execute implements Command.
func (c *TurnOffCommand) Execute() { c.tv.TurnOff() }

// Execute implements Command.
func (c *VolumeUpCommand) Execute() { c.tv.VolumeUp() }
