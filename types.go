// Package bace implements Batch Arithmetic Circuit Evaluation: a prover and
// verifier pair that let a prover evaluate a fixed arithmetic circuit on a
// batch of inputs in a way a verifier can check far more cheaply than
// re-evaluating the circuit on every input.
package bace

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Input is a single assignment to a circuit's input wires, in wire order.
type Input []fr.Element

// InputBatch is an ordered collection of inputs sharing the same size. Every
// element must have the same length as the circuit's input size.
type InputBatch []Input

// OutputBatch holds one field element per input in a batch, in batch order.
type OutputBatch []fr.Element

// Proof is the coefficient-form polynomial a prover emits: Proof[i] is the
// coefficient of x^i in the basis of the large evaluation domain the prover
// used.
type Proof []fr.Element
