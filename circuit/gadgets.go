package circuit

// AddInnerProductGates splits the n inputs into a left half [1..mid] and a
// right half [mid+1..n] at mid = ceil(n/2), multiplies each retained pair
// (left[j], right[j]) and sums the products. When n is odd, index mid-1 is
// skipped from the loop — a fidelity quirk preserved from the reference
// implementation, not a bug to fix (see DESIGN.md). Resulting degree: 2 for
// even n. For odd n the last pair's right address mid+mid is n+1, which is a
// gate rather than an input: for n >= 5 it is the first product gate, giving
// degree 3; for n == 3 it is not yet defined, AddGate rejects it and this
// method panics.
func (c *Circuit) AddInnerProductGates() {
	mid := (c.inputSize + 1) / 2
	odd := c.inputSize%2 == 1

	var products []uint32
	for j := uint32(1); j <= mid; j++ {
		if odd && j == mid-1 {
			continue
		}
		addr, err := c.AddGate(Gate{
			Type:   GateProduct,
			Inputs: []InputElement{Variable(j), Variable(mid + j)},
		})
		if err != nil {
			panic(err)
		}
		products = append(products, addr)
	}

	if _, err := c.addSumOver(products); err != nil {
		panic(err)
	}
}

// AddQuadraticInnerProductGates splits the n inputs the same way as
// AddInnerProductGates, but first builds mid "square-sum" wires s_0..s_mid-1,
// each the sum of (left[j])^2 over the retained j, and then multiplies each
// s_(i-1) by right[i] before summing.
//
// The inner square-sum loop ignores the outer index i, so every s_i computes
// the identical value — a faithfully reproduced reuse bug, not a bug to fix
// (published scenario S3 depends on it; see DESIGN.md). Resulting degree: 3
// for even n. For odd n the last product's right address mid+mid is n+1,
// the first square gate, giving degree 4.
func (c *Circuit) AddQuadraticInnerProductGates() {
	mid := (c.inputSize + 1) / 2
	odd := c.inputSize%2 == 1

	var retained []uint32
	for j := uint32(1); j <= mid; j++ {
		if odd && j == mid-1 {
			continue
		}
		retained = append(retained, j)
	}

	squares := make([]uint32, 0, len(retained))
	for _, j := range retained {
		addr, err := c.AddGate(Gate{
			Type:   GateProduct,
			Inputs: []InputElement{Variable(j), Variable(j)},
		})
		if err != nil {
			panic(err)
		}
		squares = append(squares, addr)
	}

	s := make([]uint32, mid)
	for i := uint32(0); i < mid; i++ {
		addr, err := c.addSumOver(squares)
		if err != nil {
			panic(err)
		}
		s[i] = addr
	}

	var products []uint32
	for _, i := range retained {
		addr, err := c.AddGate(Gate{
			Type:   GateProduct,
			Inputs: []InputElement{Variable(s[i-1]), Variable(mid + i)},
		})
		if err != nil {
			panic(err)
		}
		products = append(products, addr)
	}

	if _, err := c.addSumOver(products); err != nil {
		panic(err)
	}
}

// addSumOver appends a SUM gate over the given gate addresses and returns its
// address.
func (c *Circuit) addSumOver(addrs []uint32) (uint32, error) {
	inputs := make([]InputElement, len(addrs))
	for i, a := range addrs {
		inputs[i] = Variable(a)
	}
	return c.AddGate(Gate{Type: GateSum, Inputs: inputs})
}
