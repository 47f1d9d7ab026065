// Package polynomial implements dense polynomials with coefficients in
// GF(2^8), used to express the homomorphic fingerprint and the Reed-Solomon
// code's algebra.
package polynomial

import "github.com/rizkytaufiq/go-veristore/field"

// Polynomial is a dense coefficient vector: Coeffs[i] is the coefficient of
// x^i. A Polynomial is a value type; operations return a new Polynomial
// rather than mutating the receiver.
type Polynomial struct {
	Coeffs []field.Element
}

// New builds a Polynomial from coefficients in little-endian order
// (lowest degree first), normalizing away trailing zero coefficients.
func New(coeffs []field.Element) Polynomial {
	return Polynomial{Coeffs: normalize(coeffs)}
}

// FromBytes treats data as the coefficient vector of a polynomial, byte i
// becoming the coefficient of x^i.
func FromBytes(data []byte) Polynomial {
	coeffs := make([]field.Element, len(data))
	copy(coeffs, data)
	return New(coeffs)
}

// normalize strips trailing zero coefficients but always leaves at least
// one coefficient, so the zero polynomial is represented as []byte{0}.
func normalize(coeffs []field.Element) []field.Element {
	n := len(coeffs)
	if n == 0 {
		return []field.Element{0}
	}
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}
	out := make([]field.Element, n)
	copy(out, coeffs[:n])
	return out
}

// Bytes returns the coefficients in little-endian order.
func (p Polynomial) Bytes() []byte {
	out := make([]byte, len(p.Coeffs))
	copy(out, p.Coeffs)
	return out
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// Evaluate computes p(r) via Horner's method.
func (p Polynomial) Evaluate(r field.Element) field.Element {
	return field.PolyEval(p.Coeffs, r)
}

// Add returns p+q, pointwise in the field.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		out[i] = field.Add(at(p.Coeffs, i), at(q.Coeffs, i))
	}
	return New(out)
}

// Sub is identical to Add in characteristic 2.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q)
}

// Mul returns the schoolbook product p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.Degree() < 0 || q.Degree() < 0 {
		return New([]field.Element{0})
	}
	out := make([]field.Element, len(p.Coeffs)+len(q.Coeffs)-1)
	for i, pc := range p.Coeffs {
		if pc == 0 {
			continue
		}
		for j, qc := range q.Coeffs {
			out[i+j] = field.Add(out[i+j], field.Mul(pc, qc))
		}
	}
	return New(out)
}

// MulScalar returns p scaled by a single field element.
func (p Polynomial) MulScalar(s field.Element) Polynomial {
	out := make([]field.Element, len(p.Coeffs))
	field.MulSlice(out, p.Coeffs, s)
	return New(out)
}

// DivideByLinear performs synthetic division of p by (x - root) (which is
// x + root in characteristic 2), returning the quotient and remainder such
// that p(x) = quotient(x)*(x-root) + remainder.
func (p Polynomial) DivideByLinear(root field.Element) (quotient Polynomial, remainder field.Element) {
	n := len(p.Coeffs)
	if n == 1 {
		return New([]field.Element{0}), p.Coeffs[0]
	}
	// Work from the highest-degree coefficient down, writing each quotient
	// coefficient straight into its little-endian slot.
	q := make([]field.Element, n-1)
	carry := p.Coeffs[n-1]
	q[n-2] = carry
	for i := n - 2; i >= 1; i-- {
		carry = field.Add(p.Coeffs[i], field.Mul(root, carry))
		q[i-1] = carry
	}
	remainder = field.Add(p.Coeffs[0], field.Mul(root, carry))
	return New(q), remainder
}

func at(coeffs []field.Element, i int) field.Element {
	if i >= len(coeffs) {
		return 0
	}
	return coeffs[i]
}
