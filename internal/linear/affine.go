// Package linear parses and solves single-variable linear equations and
// validates generated equation problems against their stated answers.
package linear

// Affine is the linear form AX*x + B.
type Affine struct {
	AX float64
	B  float64
}

func (a Affine) add(b Affine) Affine {
	return Affine{AX: a.AX + b.AX, B: a.B + b.B}
}

func (a Affine) sub(b Affine) Affine {
	return Affine{AX: a.AX - b.AX, B: a.B - b.B}
}

func (a Affine) neg() Affine {
	return Affine{AX: -a.AX, B: -a.B}
}

// mul fails when both operands depend on x.
func (a Affine) mul(b Affine) (Affine, bool) {
	switch {
	case a.AX != 0 && b.AX != 0:
		return Affine{}, false
	case a.AX != 0:
		return Affine{AX: a.AX * b.B, B: a.B * b.B}, true
	case b.AX != 0:
		return Affine{AX: b.AX * a.B, B: b.B * a.B}, true
	}
	return Affine{B: a.B * b.B}, true
}

// div fails when the divisor depends on x or is zero.
func (a Affine) div(b Affine) (Affine, bool) {
	if b.AX != 0 || b.B == 0 {
		return Affine{}, false
	}
	return Affine{AX: a.AX / b.B, B: a.B / b.B}, true
}
