// Package command implements the Command pattern with a TV remote.
//
// A Command wraps one action on a receiver (the TV) behind Execute. The
// Remote is the invoker: it holds the armed command, runs it on
// PressButton, and keeps a history stack of every pressed command.
//
// Undo semantics:
//
//	Undo pops the most recent history entry and re-executes the entry that
//	is now on top. It does not reverse the popped command. When the stack
//	is empty, or becomes empty after the pop, Undo does nothing.
//
// Example:
//
//	r := command.NewRemote()
//	tv := command.NewTV(os.Stdout)
//	r.SetCommand(command.NewTurnOnCommand(tv))
//	_ = r.PressButton()          // TV is turned on
//	r.SetCommand(command.NewVolumeUpCommand(tv))
//	_ = r.PressButton()          // TV volume up to 1
//	r.Undo()                     // TV is turned on
package command
