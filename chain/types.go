package chain

import "io"

// Severity levels handled by the stock handlers.
const (
	LevelInfo  = 1
	LevelError = 2
	LevelDebug = 3
)

// InvalidLevel is printed by the last handler when no link claims a level.
const InvalidLevel = "Invalid level"

// Logger is one link of the chain.
type Logger interface {
	// SetNext appends next at the tail of the chain and returns the receiver.
	SetNext(next Logger) Logger
	// Log prints message if level is claimed somewhere along the chain,
	// otherwise prints InvalidLevel.
	Log(level int, message string)
}

// Handler is a Logger bound to one severity level.
type Handler struct {
	level  int       // severity this link claims
	prefix string    // printed before the message, e.g. "Info"
	next   Logger    // successor; nil at the tail
	out    io.Writer // destination; nil means stdout
}

// NewHandler returns a Handler claiming level and printing "<prefix>: msg".
func NewHandler(w io.Writer, level int, prefix string) *Handler {
	return &Handler{level: level, prefix: prefix, out: w}
}

// NewInfoHandler returns a handler for LevelInfo.
func NewInfoHandler(w io.Writer) *Handler { return NewHandler(w, LevelInfo, "Info") }

// NewErrorHandler returns a handler for LevelError.
func NewErrorHandler(w io.Writer) *Handler { return NewHandler(w, LevelError, "Error") }

// NewDebugHandler returns a handler for LevelDebug.
func NewDebugHandler(w io.Writer) *Handler { return NewHandler(w, LevelDebug, "Debug") }
