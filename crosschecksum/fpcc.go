// Package crosschecksum implements the fingerprinted cross-checksum (FPCC):
// a single commitment binding every fragment hash of an object plus a
// homomorphic fingerprint of each data-positioned fragment, computed under
// an evaluation point derived only after every fragment has been hashed.
package crosschecksum

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/rizkytaufiq/go-veristore/erasure"
	"github.com/rizkytaufiq/go-veristore/field"
	"github.com/rizkytaufiq/go-veristore/fingerprint"
)

// FPCC is the fingerprinted cross-checksum for one object: n fragment
// hashes, m fingerprints of the first m fragments, and the evaluation point
// r they were computed under. An FPCC is immutable once generated.
type FPCC struct {
	N            int
	M            int
	R            field.Element
	Hashes       [][32]byte
	Fingerprints []field.Element
}

// Generate computes the FPCC for exactly n fragments of one block. The
// evaluation point r is fixed only after every fragment hash is known, so a
// Byzantine server that has seen the FPCC cannot tailor a forged fragment
// to a chosen r.
func Generate(fragments []erasure.Fragment) (FPCC, error) {
	if len(fragments) == 0 {
		return FPCC{}, fmt.Errorf("%w: no fragments supplied", erasure.ErrInvalidParameters)
	}
	sorted := make([]erasure.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	n := sorted[0].N
	m := sorted[0].M
	if len(sorted) != n {
		return FPCC{}, fmt.Errorf("%w: expected %d fragments, got %d", erasure.ErrInvalidParameters, n, len(sorted))
	}

	hashes := make([][32]byte, n)
	for i, f := range sorted {
		if f.Index != i {
			return FPCC{}, fmt.Errorf("%w: fragment indices must be 0..n-1 with no gaps", erasure.ErrInvalidParameters)
		}
		hashes[i] = sha256.Sum256(f.Data)
	}

	r, err := fingerprint.DerivePoint(hashes)
	if err != nil {
		return FPCC{}, fmt.Errorf("crosschecksum: %w", err)
	}

	fingerprints := make([]field.Element, m)
	for j := 0; j < m; j++ {
		fingerprints[j] = fingerprint.Fingerprint(r, sorted[j].Data)
	}

	return FPCC{N: n, M: m, R: r, Hashes: hashes, Fingerprints: fingerprints}, nil
}

// Canonical returns the deterministic byte encoding of the FPCC:
// n (4 bytes BE) || m (4 bytes BE) || r (1 byte) || hashes || fingerprints.
// This layout is documented here and must never change without introducing
// a version byte prefix, since Digest depends on it.
func (f FPCC) Canonical() []byte {
	out := make([]byte, 0, 9+32*len(f.Hashes)+len(f.Fingerprints))
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f.N))
	out = append(out, buf[:]...)
	binary.BigEndian.PutUint32(buf[:], uint32(f.M))
	out = append(out, buf[:]...)
	out = append(out, f.R)
	for _, h := range f.Hashes {
		out = append(out, h[:]...)
	}
	out = append(out, f.Fingerprints...)
	return out
}

// Digest returns SHA-256 of the canonical serialization. Equal FPCCs always
// have equal digests.
func (f FPCC) Digest() [32]byte {
	return sha256.Sum256(f.Canonical())
}
