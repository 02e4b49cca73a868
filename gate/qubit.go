// Package gate implements the symbolic quantum-gate algebra: elementary,
// controlled and composite transforms over independent complex amplitudes.
// Amplitudes are caller-owned; gates mutate them in place and report a
// plain error outcome. Arithmetic runs through a qmath.Backend, so every
// gate exists once for both the fixed and the floating regime.
package gate

// MaxTagLen is the longest tag carried by a qubit, in bytes. Longer tags
// are clipped on construction.
const MaxTagLen = 32

// Qubit is one symbolic qubit: an identifier, a short label and a single
// complex amplitude. There is no joint state vector; each qubit is an
// independent scalar and no normalization is enforced across repeated
// transforms.
type Qubit[C any] struct {
	ID  uint64
	Tag string
	Amp C
}

// NewQubit constructs a qubit with the given identity and amplitude,
// clipping the tag to MaxTagLen bytes.
func NewQubit[C any](id uint64, tag string, amp C) *Qubit[C] {
	if len(tag) > MaxTagLen {
		tag = tag[:MaxTagLen]
	}
	return &Qubit[C]{ID: id, Tag: tag, Amp: amp}
}
