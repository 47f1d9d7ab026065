package erasure

import (
	"fmt"

	"github.com/rizkytaufiq/go-veristore/field"
)

// matrix is a dense row-major matrix over GF(2^8).
type matrix [][]field.Element

// cauchyGenerator builds the (n x m) generator matrix G[i][j] = 1/(x_i+y_j)
// with x_i = i+1 for i in [0,n) and y_j = n+1+j for j in [0,m). Every m x m
// submatrix of a Cauchy matrix built from disjoint x/y sets is invertible,
// which is exactly the property an erasure code needs: any m surviving rows
// can reconstruct the original m-vector. x_i and y_j are drawn from disjoint
// ranges ([1,n] and [n+1,n+m]), so x_i+y_j is never zero and Inv never
// fails here; the error is still propagated rather than discarded so a
// future change to the index ranges fails loudly instead of panicking deep
// in table lookups.
func cauchyGenerator(n, m int) (matrix, error) {
	g := make(matrix, n)
	for i := 0; i < n; i++ {
		row := make([]field.Element, m)
		x := field.Element(i + 1)
		for j := 0; j < m; j++ {
			y := field.Element(n + 1 + j)
			inv, err := field.Inv(field.Add(x, y))
			if err != nil {
				return nil, fmt.Errorf("%w: cauchy generator term (%d,%d): %v", ErrInvalidParameters, i, j, err)
			}
			row[j] = inv
		}
		g[i] = row
	}
	return g, nil
}

// rows returns the submatrix consisting of the given row indices, in order.
func (g matrix) rows(indices []int) matrix {
	out := make(matrix, len(indices))
	for k, idx := range indices {
		out[k] = g[idx]
	}
	return out
}

// invert computes the inverse of a square matrix via Gauss-Jordan
// elimination over GF(2^8). It returns ErrDecodingFailure if the matrix is
// singular, which for a correctly-selected Cauchy submatrix never happens.
func (m matrix) invert() (matrix, error) {
	n := len(m)
	aug := make(matrix, n)
	for i := range aug {
		row := make([]field.Element, 2*n)
		copy(row, m[i])
		row[n+i] = 1
		aug[i] = row
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if aug[r][col] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, ErrDecodingFailure
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		inv, err := field.Inv(aug[col][col])
		if err != nil {
			// Unreachable: the pivot search above already guarantees
			// aug[col][col] != 0. Surfaced anyway rather than ignored.
			return nil, fmt.Errorf("%w: %v", ErrDecodingFailure, err)
		}
		for k := range aug[col] {
			aug[col][k] = field.Mul(aug[col][k], inv)
		}

		for r := 0; r < n; r++ {
			if r == col || aug[r][col] == 0 {
				continue
			}
			factor := aug[r][col]
			for k := range aug[r] {
				aug[r][k] = field.Add(aug[r][k], field.Mul(factor, aug[col][k]))
			}
		}
	}

	out := make(matrix, n)
	for i := range out {
		out[i] = aug[i][n:]
	}
	return out, nil
}
