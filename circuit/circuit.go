// Package circuit implements the flat arithmetic-circuit data model that
// BACE's prover and verifier evaluate: a fixed input size, followed by an
// ordered list of SUM/PRODUCT gates addressed by position over
// [1..n] ∪ [n+1..n+len(gates)]. Gates may only reference inputs or strictly
// earlier gates, so the gate list is a DAG by construction.
package circuit

import (
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/bace"
)

// GateType discriminates a gate's accumulation rule.
type GateType int

const (
	// GateSum accumulates its inputs starting from zero.
	GateSum GateType = iota
	// GateProduct accumulates its inputs starting from the first input's
	// value (no multiplicative identity is seeded).
	GateProduct
)

func (t GateType) String() string {
	switch t {
	case GateSum:
		return "SUM"
	case GateProduct:
		return "PRODUCT"
	default:
		return "UNKNOWN"
	}
}

// InputElement is a tagged union: either a backward reference to a gate
// number (Variable) or a fixed field element (Constant).
type InputElement struct {
	isVariable bool
	gateNumber uint32
	constant   fr.Element
}

// Variable builds an InputElement referencing gate number gateNumber (1-based,
// over the circuit's [1..size] address space).
func Variable(gateNumber uint32) InputElement {
	return InputElement{isVariable: true, gateNumber: gateNumber}
}

// Constant builds an InputElement holding a fixed field element.
func Constant(c fr.Element) InputElement {
	return InputElement{constant: c}
}

// IsVariable reports whether e is a backward gate reference (as opposed to a
// constant).
func (e InputElement) IsVariable() bool {
	return e.isVariable
}

// GateNumber returns the referenced gate address. Only meaningful when
// IsVariable() is true.
func (e InputElement) GateNumber() uint32 {
	return e.gateNumber
}

// ConstantValue returns the constant value. Only meaningful when
// IsVariable() is false.
func (e InputElement) ConstantValue() fr.Element {
	return e.constant
}

func (e InputElement) resolve(wire []fr.Element) fr.Element {
	if e.isVariable {
		return wire[e.gateNumber-1]
	}
	return e.constant
}

func (e InputElement) degree(deg []uint64) uint64 {
	if e.isVariable {
		return deg[e.gateNumber-1]
	}
	return 0
}

func (e InputElement) String() string {
	if e.isVariable {
		return fmt.Sprintf("v%d", e.gateNumber)
	}
	return e.constant.String()
}

// Gate is a single SUM or PRODUCT node over an ordered, non-empty list of
// InputElements.
type Gate struct {
	Type   GateType
	Inputs []InputElement
}

func (g Gate) String() string {
	parts := make([]string, len(g.Inputs))
	for i, in := range g.Inputs {
		parts[i] = in.String()
	}
	return fmt.Sprintf("%s(%s)", g.Type, strings.Join(parts, ", "))
}

// Circuit is a fixed-input-size, append-only list of gates.
type Circuit struct {
	inputSize uint32
	gates     []Gate
}

// New constructs an empty circuit with n input wires.
func New(n uint32) *Circuit {
	return &Circuit{inputSize: n}
}

// NumInputs returns the circuit's declared input size.
func (c *Circuit) NumInputs() uint32 {
	return c.inputSize
}

// Size returns the total wire count: inputs plus gates.
func (c *Circuit) Size() uint32 {
	return c.inputSize + uint32(len(c.gates))
}

// ClearGates removes every gate, leaving the input size untouched.
func (c *Circuit) ClearGates() {
	c.gates = nil
}

// Gates exposes the gate list read-only, in address order.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// AddGate appends g and returns its 1-based gate address. It rejects empty
// gates, unrecognized gate types, and variable references outside the
// backward-addressable range [1, n+len(gates)].
func (c *Circuit) AddGate(g Gate) (uint32, error) {
	if len(g.Inputs) == 0 {
		return 0, bace.ErrEmptyGate
	}
	if g.Type != GateSum && g.Type != GateProduct {
		return 0, bace.ErrBadGateType
	}
	maxAddr := c.inputSize + uint32(len(c.gates))
	for _, in := range g.Inputs {
		if in.isVariable && (in.gateNumber < 1 || in.gateNumber > maxAddr) {
			return 0, bace.ErrBadVariableReference
		}
	}
	c.gates = append(c.gates, g)
	return c.inputSize + uint32(len(c.gates)), nil
}

// Evaluate runs the circuit on input, returning the accumulator produced by
// the last gate. Requires len(input) == NumInputs() and at least one gate.
func (c *Circuit) Evaluate(input bace.Input) (fr.Element, error) {
	if uint32(len(input)) != c.inputSize {
		return fr.Element{}, bace.ErrInputSizeMismatch
	}
	if len(c.gates) == 0 {
		return fr.Element{}, bace.ErrEmptyCircuit
	}

	wire := make([]fr.Element, c.Size())
	copy(wire, input)

	var last fr.Element
	for gi, g := range c.gates {
		idx := int(c.inputSize) + gi
		var acc fr.Element
		switch g.Type {
		case GateSum:
			for _, in := range g.Inputs {
				v := in.resolve(wire)
				acc.Add(&acc, &v)
			}
		case GateProduct:
			acc = g.Inputs[0].resolve(wire)
			for _, in := range g.Inputs[1:] {
				v := in.resolve(wire)
				acc.Mul(&acc, &v)
			}
		}
		wire[idx] = acc
		last = acc
	}
	return last, nil
}

// Degree returns the maximum gate degree, using the recursive rule: inputs
// have degree 1, SUM gates take the max over variable-input degrees,
// PRODUCT gates take the sum (constants contribute 0 either way). Returns 0
// for a circuit with no gates.
func (c *Circuit) Degree() uint64 {
	if len(c.gates) == 0 {
		return 0
	}

	deg := make([]uint64, c.Size())
	for i := uint32(0); i < c.inputSize; i++ {
		deg[i] = 1
	}

	var maxDeg uint64
	for gi, g := range c.gates {
		idx := int(c.inputSize) + gi
		var d uint64
		switch g.Type {
		case GateSum:
			for _, in := range g.Inputs {
				if v := in.degree(deg); v > d {
					d = v
				}
			}
		case GateProduct:
			for _, in := range g.Inputs {
				d += in.degree(deg)
			}
		}
		deg[idx] = d
		if d > maxDeg {
			maxDeg = d
		}
	}
	return maxDeg
}

// Levels groups gate addresses into dependency-respecting levels: gate g's
// level is 1 + max(level of its Variable dependencies on other gates), or 0
// if it has none. Every Variable dependency of a gate in level l therefore
// lives in some level < l. This is read-only auxiliary structure for callers
// that want to evaluate independent gates in parallel; the prover and the
// naive evaluator do not use it, and Evaluate itself always runs the serial,
// in-order sweep specified above.
//
// Gates only ever reference earlier gates, so a single forward pass over the
// already address-ordered gate list suffices; no separate graph structure is
// needed to find dependency levels here.
func (c *Circuit) Levels() [][]uint32 {
	if len(c.gates) == 0 {
		return nil
	}

	level := make([]int, len(c.gates))
	maxLevel := 0
	for gi, g := range c.gates {
		var lvl int
		for _, in := range g.Inputs {
			if in.isVariable && in.gateNumber > c.inputSize {
				dep := int(in.gateNumber-c.inputSize) - 1
				if l := level[dep] + 1; l > lvl {
					lvl = l
				}
			}
		}
		level[gi] = lvl
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	levels := make([][]uint32, maxLevel+1)
	for gi, lvl := range level {
		levels[lvl] = append(levels[lvl], c.inputSize+uint32(gi)+1)
	}
	return levels
}

// String renders the circuit as one constraint per line, e.g. "g5 = SUM(v1, v2)".
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "circuit(n=%d, gates=%d, degree=%d)\n", c.inputSize, len(c.gates), c.Degree())
	for gi, g := range c.gates {
		fmt.Fprintf(&b, "g%d = %s\n", int(c.inputSize)+gi+1, g)
	}
	return b.String()
}
