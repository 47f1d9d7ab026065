package erasure

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/rizkytaufiq/go-veristore/field"
)

// Encode splits data into n fragments such that any m of them reconstruct
// the original bytes. If blockID is empty, it defaults to the hex SHA-256
// of data.
//
// Padding: data is zero-padded to a multiple of m so it divides evenly into
// m equal stripes; OriginalLength on every fragment records the true byte
// count so Decode can truncate the padding back off.
//
// Layout is column-major across stripes: stripe i holds bytes
// data[i], data[i+m], data[i+2m], ... (not a literal chunk_size+1 slice
// width, which would over-read by one byte per stripe). Every byte column
// across the m stripes is combined with the generator matrix into n coded
// bytes, one per output fragment, and the assembly loop below runs to
// completion over all n fragments rather than returning early.
func Encode(data []byte, n, m int, blockID string) ([]Fragment, error) {
	if err := validateEncodeParams(data, n, m); err != nil {
		return nil, err
	}
	if blockID == "" {
		sum := sha256.Sum256(data)
		blockID = hex.EncodeToString(sum[:])
	}

	originalLength := len(data)
	stripeLen := (originalLength + m - 1) / m
	padded := make([]byte, stripeLen*m)
	copy(padded, data)

	// De-interleave the column-major padded data into m contiguous stripe
	// buffers, so each output fragment can be accumulated with bulk
	// slice operations (field.MulSlice, field.AddSlice) instead of one
	// byte at a time.
	stripes := deinterleave(padded, m, stripeLen)

	g, err := cauchyGenerator(n, m)
	if err != nil {
		return nil, err
	}

	fragmentData := make([][]byte, n)
	term := make([]byte, stripeLen)
	for i := 0; i < n; i++ {
		out := make([]byte, stripeLen)
		for s := 0; s < m; s++ {
			coeff := g[i][s]
			if coeff == 0 {
				continue
			}
			field.MulSlice(term, stripes[s], coeff)
			field.AddSlice(out, out, term)
		}
		fragmentData[i] = out
	}

	fragments := make([]Fragment, n)
	for i := 0; i < n; i++ {
		fragments[i] = Fragment{
			Index:          i,
			Data:           fragmentData[i],
			BlockID:        blockID,
			N:              n,
			M:              m,
			OriginalLength: originalLength,
		}
	}
	return fragments, nil
}
