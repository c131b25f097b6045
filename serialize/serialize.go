// Package serialize provides the CBOR wire format for BACE's Proof,
// InputBatch, and Circuit values, matching the WriteTo/ReadFrom-over-CBOR
// convention internal/backend/bw6-633/cs.SparseR1CS uses for its own
// constraint-system persistence.
package serialize

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/bace"
	"github.com/nume-crypto/bace/circuit"
)

// maxCBORElements bounds array/map sizes the decoder will accept, guarding
// against a malicious or corrupt stream claiming an unbounded allocation.
const maxCBORElements = 1 << 27

func encMode() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
}

func decMode() (cbor.DecMode, error) {
	return cbor.DecOptions{
		MaxArrayElements: maxCBORElements,
		MaxMapPairs:      maxCBORElements,
	}.DecMode()
}

func elementToBytes(e fr.Element) []byte {
	b := e.Bytes()
	return b[:]
}

func elementFromBytes(b []byte) (fr.Element, error) {
	var e fr.Element
	e.SetBytes(b)
	return e, nil
}

func toWireInputElement(e circuit.InputElement) wireInputElement {
	if e.IsVariable() {
		return wireInputElement{IsVariable: true, GateNumber: e.GateNumber()}
	}
	return wireInputElement{Constant: elementToBytes(e.ConstantValue())}
}

func fromWireInputElement(w wireInputElement) (circuit.InputElement, error) {
	if w.IsVariable {
		return circuit.Variable(w.GateNumber), nil
	}
	e, err := elementFromBytes(w.Constant)
	if err != nil {
		return circuit.InputElement{}, err
	}
	return circuit.Constant(e), nil
}

// EncodeProof writes p to w in CBOR, one 32-byte big-endian element per
// coefficient, low-degree first.
func EncodeProof(w io.Writer, p bace.Proof) error {
	enc, err := encMode()
	if err != nil {
		return err
	}
	rows := make([][]byte, len(p))
	for i, e := range p {
		rows[i] = elementToBytes(e)
	}
	return enc.NewEncoder(w).Encode(rows)
}

// DecodeProof reads a Proof previously written by EncodeProof.
func DecodeProof(r io.Reader) (bace.Proof, error) {
	dm, err := decMode()
	if err != nil {
		return nil, err
	}
	var rows [][]byte
	if err := dm.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}
	p := make(bace.Proof, len(rows))
	for i, raw := range rows {
		e, err := elementFromBytes(raw)
		if err != nil {
			return nil, err
		}
		p[i] = e
	}
	return p, nil
}

// EncodeInputBatch writes batch to w in CBOR.
func EncodeInputBatch(w io.Writer, batch bace.InputBatch) error {
	enc, err := encMode()
	if err != nil {
		return err
	}
	rows := make([][][]byte, len(batch))
	for i, input := range batch {
		row := make([][]byte, len(input))
		for j, e := range input {
			row[j] = elementToBytes(e)
		}
		rows[i] = row
	}
	return enc.NewEncoder(w).Encode(rows)
}

// DecodeInputBatch reads an InputBatch previously written by EncodeInputBatch.
func DecodeInputBatch(r io.Reader) (bace.InputBatch, error) {
	dm, err := decMode()
	if err != nil {
		return nil, err
	}
	var rows [][][]byte
	if err := dm.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}
	batch := make(bace.InputBatch, len(rows))
	for i, row := range rows {
		input := make(bace.Input, len(row))
		for j, raw := range row {
			e, err := elementFromBytes(raw)
			if err != nil {
				return nil, err
			}
			input[j] = e
		}
		batch[i] = input
	}
	return batch, nil
}

// wireInputElement is the on-the-wire form of circuit.InputElement: exactly
// one of GateNumber (when IsVariable) or Constant (when not) is meaningful.
type wireInputElement struct {
	IsVariable bool
	GateNumber uint32
	Constant   []byte
}

type wireGate struct {
	Type   int
	Inputs []wireInputElement
}

type wireCircuit struct {
	InputSize uint32
	Gates     []wireGate
}

// EncodeCircuit writes k's input size and gate list to w in CBOR.
func EncodeCircuit(w io.Writer, k *circuit.Circuit) error {
	enc, err := encMode()
	if err != nil {
		return err
	}
	wc := wireCircuit{InputSize: k.NumInputs()}
	for _, g := range k.Gates() {
		wg := wireGate{Type: int(g.Type)}
		for _, in := range g.Inputs {
			wg.Inputs = append(wg.Inputs, toWireInputElement(in))
		}
		wc.Gates = append(wc.Gates, wg)
	}
	return enc.NewEncoder(w).Encode(wc)
}

// DecodeCircuit reads a Circuit previously written by EncodeCircuit.
func DecodeCircuit(r io.Reader) (*circuit.Circuit, error) {
	dm, err := decMode()
	if err != nil {
		return nil, err
	}
	var wc wireCircuit
	if err := dm.NewDecoder(r).Decode(&wc); err != nil {
		return nil, err
	}

	k := circuit.New(wc.InputSize)
	for _, wg := range wc.Gates {
		inputs := make([]circuit.InputElement, len(wg.Inputs))
		for i, wi := range wg.Inputs {
			ie, err := fromWireInputElement(wi)
			if err != nil {
				return nil, err
			}
			inputs[i] = ie
		}
		if _, err := k.AddGate(circuit.Gate{Type: circuit.GateType(wg.Type), Inputs: inputs}); err != nil {
			return nil, err
		}
	}
	return k, nil
}
