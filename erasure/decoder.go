package erasure

import (
	"fmt"
	"sort"

	"github.com/rizkytaufiq/go-veristore/field"
)

// Decode reconstructs the original data from at least m fragments of one
// block. Fragments may arrive in any order and in greater number than m;
// Decode deterministically selects the m lowest indices so results are
// reproducible across callers. Decode does not consult any verification
// status: selecting only verifier-consistent fragments is the caller's
// responsibility (see the verifier package and internal/dispersal).
func Decode(fragments []Fragment) ([]byte, error) {
	if err := validateDecodeParams(fragments); err != nil {
		return nil, err
	}

	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	first := sorted[0]
	m := first.M
	selected := sorted[:m]

	indices := make([]int, m)
	for i, f := range selected {
		indices[i] = f.Index
	}

	g, err := cauchyGenerator(first.N, m)
	if err != nil {
		return nil, err
	}
	sub := g.rows(indices)
	inv, err := sub.invert()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodingFailure, err)
	}

	stripeLen := len(first.Data)
	received := make([][]byte, m)
	for i, f := range selected {
		received[i] = f.Data
	}

	stripes := make([][]byte, m)
	term := make([]byte, stripeLen)
	for s := 0; s < m; s++ {
		out := make([]byte, stripeLen)
		for k := 0; k < m; k++ {
			coeff := inv[s][k]
			if coeff == 0 {
				continue
			}
			field.MulSlice(term, received[k], coeff)
			field.AddSlice(out, out, term)
		}
		stripes[s] = out
	}
	padded := interleave(stripes, m, stripeLen)

	if first.OriginalLength > len(padded) {
		return nil, fmt.Errorf("%w: original length %d exceeds padded length %d", ErrMismatchedFragments, first.OriginalLength, len(padded))
	}
	return padded[:first.OriginalLength], nil
}
