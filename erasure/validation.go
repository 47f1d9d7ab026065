package erasure

import "fmt"

// validateEncodeParams validates the parameters for Encode, separately from
// the coding logic itself so each concern can be read and tested on its own.
func validateEncodeParams(data []byte, n, m int) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data must not be empty", ErrInvalidParameters)
	}
	if m < 1 || n < 1 {
		return fmt.Errorf("%w: n and m must be positive", ErrInvalidParameters)
	}
	if m > n {
		return fmt.Errorf("%w: m (%d) must not exceed n (%d)", ErrInvalidParameters, m, n)
	}
	if n+m > 256 {
		return fmt.Errorf("%w: n+m (%d) must not exceed 256", ErrInvalidParameters, n+m)
	}
	return nil
}

// validateDecodeParams checks that fragments form a consistent set eligible
// for decoding: non-empty, agreeing on block identity and shape, and at
// least m in number.
func validateDecodeParams(fragments []Fragment) error {
	if len(fragments) == 0 {
		return fmt.Errorf("%w: no fragments supplied", ErrInsufficientFragments)
	}

	first := fragments[0]
	if first.M < 1 {
		return fmt.Errorf("%w: invalid threshold m=%d", ErrInvalidParameters, first.M)
	}
	if len(fragments) < first.M {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFragments, len(fragments), first.M)
	}

	for i, f := range fragments {
		if f.BlockID != first.BlockID || f.N != first.N || f.M != first.M || f.OriginalLength != first.OriginalLength {
			return fmt.Errorf("%w: fragment %d disagrees on block identity or shape", ErrMismatchedFragments, i)
		}
		if len(f.Data) != len(first.Data) {
			return fmt.Errorf("%w: fragment %d has payload length %d, want %d", ErrMismatchedFragments, i, len(f.Data), len(first.Data))
		}
		if f.Index < 0 || f.Index >= f.N {
			return fmt.Errorf("%w: fragment %d has out-of-range index %d", ErrMismatchedFragments, i, f.Index)
		}
	}
	return nil
}
