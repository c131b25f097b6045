package bace

import "errors"

// Error taxonomy for the BACE proof system. Verification rejection is
// signaled separately (an empty, non-nil OutputBatch with a nil error) and is
// not part of this list — see verifier.Verify.
var (
	// ErrInputSizeMismatch is returned when a batch's inputs don't all share
	// the same length.
	ErrInputSizeMismatch = errors.New("bace: inputs in batch have mismatched sizes")

	// ErrCircuitInputMismatch is returned when a batch's input length does
	// not match the circuit's declared input size.
	ErrCircuitInputMismatch = errors.New("bace: batch input size does not match circuit input size")

	// ErrEmptyCircuit is returned by operations that require at least one
	// gate (an empty circuit has no defined evaluation).
	ErrEmptyCircuit = errors.New("bace: circuit has no gates")

	// ErrEmptyGate is returned when a gate is built with zero input elements.
	ErrEmptyGate = errors.New("bace: gate has no input elements")

	// ErrEmptyBatch is returned when an input batch has zero rows.
	ErrEmptyBatch = errors.New("bace: input batch is empty")

	// ErrBadGateType is returned when a gate is built with an unrecognized
	// GateType.
	ErrBadGateType = errors.New("bace: unrecognized gate type")

	// ErrBadVariableReference is returned when an InputElement references a
	// gate number outside the backward-addressable range.
	ErrBadVariableReference = errors.New("bace: variable input references a gate number outside the valid range")

	// ErrDomainUnsupported is returned when a requested evaluation domain
	// size is zero, is not a power of two, or exceeds the field's two-adicity.
	ErrDomainUnsupported = errors.New("bace: requested domain size is not a power of two within field two-adicity")
)
