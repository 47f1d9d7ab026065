// Package erasure implements an (n, m) Reed-Solomon erasure code over
// GF(2^8) using a Cauchy generator matrix: any m of the n fragments it
// produces suffice to reconstruct the original data.
package erasure

// Fragment is one coded output of Encode. All fragments produced from the
// same object share BlockID, N, M, and OriginalLength; Data has equal
// length across all fragments of a block.
type Fragment struct {
	Index          int
	Data           []byte
	BlockID        string
	N              int
	M              int
	OriginalLength int
}
