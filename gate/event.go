package gate

import "github.com/rs/zerolog"

// Event messages. Every successful or no-op gate application emits exactly
// one event; a controlled gate whose control tests off emits MsgControlOff
// instead of MsgApplied and still succeeds.
const (
	MsgApplied    = "applied"
	MsgControlOff = "control off"
)

// EventLogger is the externally supplied logging capability. The engine
// never stores events itself; it hands (gate name, primary amplitude id,
// tag, message) to whatever the caller wires in. Implementations must be
// safe for concurrent use when the engine is shared across goroutines.
type EventLogger interface {
	Event(gate string, id uint64, tag, msg string)
}

// NopLogger drops all events.
type NopLogger struct{}

func (NopLogger) Event(string, uint64, string, string) {}

// ZerologEmitter forwards gate events to a zerolog logger as structured
// debug records.
type ZerologEmitter struct {
	log zerolog.Logger
}

// NewZerologEmitter wraps a zerolog logger as an EventLogger, tagging
// every record with the emitting component.
func NewZerologEmitter(log zerolog.Logger) *ZerologEmitter {
	return &ZerologEmitter{log: log.With().Str("component", "gate").Logger()}
}

func (z *ZerologEmitter) Event(gate string, id uint64, tag, msg string) {
	z.log.Debug().
		Str("gate", gate).
		Uint64("qubit", id).
		Str("tag", tag).
		Msg(msg)
}
