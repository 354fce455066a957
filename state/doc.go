// Package state implements the State pattern as a three-state media player.
//
// States:
//
//	Stopped (initial), Playing, Paused. There is no terminal state.
//
// Transition table (operation → next state):
//
//	| current | Play          | Pause           | Stop            |
//	|---------|---------------|-----------------|-----------------|
//	| Stopped | Playing       | Stopped (reject)| Stopped (no-op) |
//	| Playing | Playing (noop)| Paused          | Stopped         |
//	| Paused  | Playing       | Paused (no-op)  | Stopped         |
//
// The Player delegates every operation to its current state value. The
// state prints its message and, for a valid transition, installs the next
// state on the player. The player never switches on its own status.
//
// The wording printed on Playing → Paused is "player already playing"; it
// is part of the observable output and kept as is.
package state
