package gate

import "fmt"

// Opcode is the numeric gate identifier consumed by the external backend
// dispatcher. The engine's local implementations occupy the 3301-3361
// range; identifiers are stable and must not be renumbered.
type Opcode uint16

const (
	OpIdentity    Opcode = 3301
	OpGlobalPhase Opcode = 3302
	OpPauliX      Opcode = 3303
	OpPauliY      Opcode = 3304
	OpPauliZ      Opcode = 3305
	OpPhaseS      Opcode = 3306
	OpSqrtX       Opcode = 3307
	OpHadamard    Opcode = 3308
	OpPhaseShift  Opcode = 3309
	OpPhaseGate   Opcode = 3310
	OpRotateX     Opcode = 3311
	OpRotateY     Opcode = 3312
	OpRotateZ     Opcode = 3313

	OpSwap      Opcode = 3314
	OpISwap     Opcode = 3315
	OpSqrtSwap  Opcode = 3316
	OpSqrtISwap Opcode = 3317
	OpSwapPow   Opcode = 3318
	OpGivens    Opcode = 3319

	OpCNOT              Opcode = 3320
	OpCZ                Opcode = 3321
	OpCCNOT             Opcode = 3322
	OpControlledPhase   Opcode = 3323
	OpMargolis          Opcode = 3324
	OpFredkin           Opcode = 3325
	OpControlledFredkin Opcode = 3326

	OpBarenco    Opcode = 3327
	OpMagic      Opcode = 3328
	OpPeres      Opcode = 3329
	OpCZSwap     Opcode = 3330
	OpSycamore   Opcode = 3331
	OpFermionSim Opcode = 3332
	OpDeutsch    Opcode = 3333

	OpRingTriangle Opcode = 3340
	OpRingHexagon  Opcode = 3341
	OpRingHeptagon Opcode = 3342
	OpRingOctagon  Opcode = 3343
	OpRing13       Opcode = 3344
	OpRing19       Opcode = 3345
	OpStar         Opcode = 3346
	OpProximity3   Opcode = 3347
	OpProximity4   Opcode = 3348
	OpProximity5   Opcode = 3349
)

var opcodeNames = map[Opcode]string{
	OpIdentity:          "identity",
	OpGlobalPhase:       "global-phase",
	OpPauliX:            "pauli-x",
	OpPauliY:            "pauli-y",
	OpPauliZ:            "pauli-z",
	OpPhaseS:            "phase-s",
	OpSqrtX:             "sqrt-x",
	OpHadamard:          "hadamard",
	OpPhaseShift:        "phase-shift",
	OpPhaseGate:         "phase-gate",
	OpRotateX:           "rotate-x",
	OpRotateY:           "rotate-y",
	OpRotateZ:           "rotate-z",
	OpSwap:              "swap",
	OpISwap:             "iswap",
	OpSqrtSwap:          "sqrt-swap",
	OpSqrtISwap:         "sqrt-iswap",
	OpSwapPow:           "swap-pow",
	OpGivens:            "givens",
	OpCNOT:              "cnot",
	OpCZ:                "cz",
	OpCCNOT:             "ccnot",
	OpControlledPhase:   "controlled-phase",
	OpMargolis:          "margolis",
	OpFredkin:           "fredkin",
	OpControlledFredkin: "controlled-fredkin",
	OpBarenco:           "barenco",
	OpMagic:             "magic",
	OpPeres:             "peres",
	OpCZSwap:            "cz-swap",
	OpSycamore:          "sycamore",
	OpFermionSim:        "fermion-sim",
	OpDeutsch:           "deutsch",
	OpRingTriangle:      "ring-triangle",
	OpRingHexagon:       "ring-hexagon",
	OpRingHeptagon:      "ring-heptagon",
	OpRingOctagon:       "ring-octagon",
	OpRing13:            "ring-13",
	OpRing19:            "ring-19",
	OpStar:              "star",
	OpProximity3:        "proximity-3d",
	OpProximity4:        "proximity-4d",
	OpProximity5:        "proximity-5d",
}

// String returns the symbolic gate name used in log events.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode-%d", uint16(op))
}
