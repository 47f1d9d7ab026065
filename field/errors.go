package field

import "errors"

// ErrDivisionByZero indicates a division or inversion operation was
// attempted with a zero divisor, which is undefined in GF(2^8). Div and Inv
// return it rather than panicking, so callers up the stack (erasure matrix
// inversion, decode) can propagate it as an ordinary error.
var ErrDivisionByZero = errors.New("field: division by zero")
