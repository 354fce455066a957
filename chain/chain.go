package chain

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// SetNext links next after the current tail and returns h.
//
// If h has no successor yet, next becomes it. Otherwise the call is
// forwarded to the existing successor, so repeated calls build the chain
// in call order.
func (h *Handler) SetNext(next Logger) Logger {
	if h.next == nil {
		h.next = next
	} else {
		h.next.SetNext(next)
	}

	return h
}

// Log prints message when level equals h's level, forwards it otherwise,
// and prints InvalidLevel when h is the tail.
func (h *Handler) Log(level int, message string) {
	switch {
	case level == h.level:
		console.Println(h.out, h.prefix+": "+message)
	case h.next != nil:
		h.next.Log(level, message)
	default:
		console.Println(h.out, InvalidLevel)
	}
}

// Level reports the severity h claims.
func (h *Handler) Level() int { return h.level }

// Next returns h's successor, or nil at the tail.
func (h *Handler) Next() Logger { return h.next }

// Len counts the links reachable from l, l included.
// Only *Handler successors are followed.
func Len(l Logger) int {
	n := 0
	for l != nil {
		n++
		h, ok := l.(*Handler)
		if !ok || h.next == nil {
			break
		}
		l = h.next
	}

	return n
}

// Demo replays the reference sequence: Info → Error → Debug, then one
// message per level in the order debug, info, error.
func Demo(w io.Writer) {
	logger := NewInfoHandler(w).
		SetNext(NewErrorHandler(w)).
		SetNext(NewDebugHandler(w))

	logger.Log(LevelDebug, "this is debug message")
	logger.Log(LevelInfo, "this is info message")
	logger.Log(LevelError, "this is error message")
}
