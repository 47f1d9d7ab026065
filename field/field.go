// Package field implements arithmetic in GF(2^8), the finite field underlying
// every higher layer of the coding and fingerprinting stack: polynomials,
// homomorphic fingerprints, and the Reed-Solomon erasure code all reduce to
// operations defined here.
package field

import "sync"

// Element is a single value in GF(2^8), represented as its natural byte encoding.
type Element = byte

// irreduciblePoly is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1.
const irreduciblePoly = 0x11B

// generator 3 (x + 1) is a primitive element of GF(2^8) under
// irreduciblePoly; the exp/log tables below are built from its powers. (2
// is not primitive under 0x11B: its powers cycle after 51 steps.)
var (
	expTable [256]byte
	logTable [256]byte
	tablesOnce sync.Once
)

func init() {
	buildTables()
}

// buildTables is idempotent and safe to call multiple times; production code
// relies on the package init rather than calling it directly.
func buildTables() {
	tablesOnce.Do(func() {
		x := 1
		for i := 0; i < 255; i++ {
			expTable[i] = byte(x)
			logTable[x] = byte(i)
			x ^= x << 1
			if x&0x100 != 0 {
				x ^= irreduciblePoly
			}
		}
		expTable[255] = expTable[0]
		logTable[0] = 0
	})
}

// Add returns a+b in GF(2^8), which is XOR. Add is its own inverse, so it
// also implements subtraction.
func Add(a, b Element) Element {
	return a ^ b
}

// Mul returns a*b in GF(2^8) via the exp/log tables.
func Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(int(logTable[a])+int(logTable[b]))%255]
}

// mulShiftXOR is the table-free definition of Mul: carry-less multiply of a
// and b followed by reduction modulo the irreducible polynomial. It exists
// to cross-check the table-based Mul (see field_test.go); the hot path
// always uses the table form.
func mulShiftXOR(a, b Element) Element {
	var result uint16
	x, y := uint16(a), uint16(b)
	for y > 0 {
		if y&1 != 0 {
			result ^= x
		}
		y >>= 1
		x <<= 1
		if x&0x100 != 0 {
			x ^= irreduciblePoly
		}
	}
	return Element(result)
}

// Inv returns the multiplicative inverse of a, or ErrDivisionByZero if a is
// zero: zero has no inverse under field multiplication.
func Inv(a Element) (Element, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return expTable[255-int(logTable[a])], nil
}

// Div returns a/b, or ErrDivisionByZero if b is zero.
func Div(a, b Element) (Element, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return expTable[(int(logTable[a])-int(logTable[b])+255)%255], nil
}

// Pow returns a^k via the exp/log tables: log(a)*k reduced mod 255.
func Pow(a Element, k int) Element {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	log := (int(logTable[a]) * k) % 255
	if log < 0 {
		log += 255
	}
	return expTable[log]
}

// MulSlice writes a*scalar into dst, element-wise. dst and a may be the
// same slice.
func MulSlice(dst, a []Element, scalar Element) {
	switch scalar {
	case 0:
		for i := range dst {
			dst[i] = 0
		}
		return
	case 1:
		copy(dst, a)
		return
	}
	logScalar := int(logTable[scalar])
	for i, v := range a {
		if v == 0 {
			dst[i] = 0
		} else {
			dst[i] = expTable[(int(logTable[v])+logScalar)%255]
		}
	}
}

// AddSlice writes a^b (bytewise XOR) into dst. dst, a, and b must have equal
// length; this is the operation xorsimd.Bytes accelerates.
func AddSlice(dst, a, b []Element) int {
	return xorBytes(dst, a, b)
}

// PolyEval evaluates the polynomial whose coefficients are coeffs (index i
// holds the coefficient of x^i) at point x, via Horner's method from the
// highest-degree term down.
func PolyEval(coeffs []Element, x Element) Element {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = Mul(result, x) ^ coeffs[i]
	}
	return result
}
