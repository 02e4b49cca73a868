package gate

import (
	"errors"

	"github.com/qsymlib/qsym/qmath"
)

var (
	// ErrNilQubit is returned when a required amplitude reference is
	// absent. Nothing is mutated.
	ErrNilQubit = errors.New("gate: nil qubit reference")

	// ErrNilOracle is returned by Deutsch when the caller supplies no
	// oracle gate.
	ErrNilOracle = errors.New("gate: nil oracle reference")
)

// ControlThreshold is the squared-magnitude bound above which a control
// amplitude counts as logically on. The comparison is strict; a control
// sitting exactly on the threshold does not fire. Every controlled gate
// shares this constant through the one control predicate.
const ControlThreshold = 0.25

// Engine applies gates in one arithmetic regime. It holds no amplitude
// state of its own: qubits are borrowed per call and the engine assumes
// exclusive access to them for the duration of the call. Engines are
// immutable after construction and may be shared across goroutines as
// long as no two concurrent calls touch the same qubit.
type Engine[C any] struct {
	be  qmath.Backend[C]
	log EventLogger
}

// New builds an engine over the given regime backend. A nil logger is
// replaced by NopLogger.
func New[C any](be qmath.Backend[C], log EventLogger) *Engine[C] {
	if log == nil {
		log = NopLogger{}
	}
	return &Engine[C]{be: be, log: log}
}

// Backend exposes the engine's arithmetic regime, for callers that need
// to construct amplitudes in the same representation.
func (e *Engine[C]) Backend() qmath.Backend[C] { return e.be }

// isOn is the shared control predicate: |amp|^2 > ControlThreshold.
func (e *Engine[C]) isOn(q *Qubit[C]) bool {
	return e.be.MagSqAbove(q.Amp, ControlThreshold)
}

// emit reports one gate application against its primary amplitude.
func (e *Engine[C]) emit(op Opcode, q *Qubit[C], msg string) {
	e.log.Event(op.String(), q.ID, q.Tag, msg)
}

// anyNil reports whether any of the operand references is absent.
func anyNil[C any](qs ...*Qubit[C]) bool {
	for _, q := range qs {
		if q == nil {
			return true
		}
	}
	return false
}
