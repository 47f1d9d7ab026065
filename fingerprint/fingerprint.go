// Package fingerprint implements homomorphic fingerprinting over GF(2^8)
// and the random-oracle derivation of the evaluation point used to compute
// fingerprints without letting a malicious server choose it.
package fingerprint

import (
	"crypto/sha256"
	"errors"

	"github.com/rizkytaufiq/go-veristore/field"
)

// ErrEmptyInput indicates the oracle was asked to derive an evaluation
// point from an empty list of fragment hashes.
var ErrEmptyInput = errors.New("fingerprint: cannot derive evaluation point from empty input")

// Fingerprint returns fp(r, data) = P_data(r), where P_data is the
// polynomial whose coefficient of x^i is byte i of data. It is computed
// directly by Horner's method on the byte stream rather than by
// materializing a polynomial.Polynomial, though the two must agree exactly
// (see fingerprint_test.go).
func Fingerprint(r field.Element, data []byte) field.Element {
	if len(data) == 0 {
		return 0
	}
	result := data[len(data)-1]
	for i := len(data) - 2; i >= 0; i-- {
		result = field.Mul(result, r) ^ data[i]
	}
	return result
}

// HashFragment returns the SHA-256 digest of a fragment's payload.
func HashFragment(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// DerivePoint computes the random-oracle evaluation point from an ordered
// list of fragment hash digests: SHA-256 of their concatenation, with the
// first byte of the result taken as the field element. Order matters: the
// caller must pass hashes in a fixed, agreed order (fragment index) so the
// derivation is reproducible.
func DerivePoint(hashes [][32]byte) (field.Element, error) {
	if len(hashes) == 0 {
		return 0, ErrEmptyInput
	}
	h := sha256.New()
	for _, digest := range hashes {
		h.Write(digest[:])
	}
	sum := h.Sum(nil)
	return sum[0], nil
}

// VerifyHomomorphicProperty checks, for test and debugging purposes, that
// fp(r, alpha*d1 XOR beta*d2) == alpha*fp(r,d1) XOR beta*fp(r,d2) for
// equal-length data slices d1 and d2. It is not used by any production
// code path.
func VerifyHomomorphicProperty(r field.Element, d1, d2 []byte, alpha, beta field.Element) bool {
	if len(d1) != len(d2) {
		return false
	}
	combined := make([]byte, len(d1))
	for i := range combined {
		combined[i] = field.Add(field.Mul(alpha, d1[i]), field.Mul(beta, d2[i]))
	}
	lhs := Fingerprint(r, combined)
	rhs := field.Add(field.Mul(alpha, Fingerprint(r, d1)), field.Mul(beta, Fingerprint(r, d2)))
	return lhs == rhs
}
