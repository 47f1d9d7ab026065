package field

import (
	"testing"

	"pgregory.net/rapid"
)

func TestAddIsXOR(t *testing.T) {
	cases := []struct{ a, b, want byte }{
		{0, 0, 0},
		{1, 1, 0},
		{0x53, 0xCA, 0x53 ^ 0xCA},
		{255, 0, 255},
	}
	for _, c := range cases {
		if got := Add(c.a, c.b); got != c.want {
			t.Errorf("Add(%#x,%#x) = %#x, want %#x", c.a, c.b, got, c.want)
		}
	}
}

func TestMulKnownValues(t *testing.T) {
	// 0x53 * 0xCA = 0x01 is the textbook AES field example.
	if got := Mul(0x53, 0xCA); got != 0x01 {
		t.Errorf("Mul(0x53,0xCA) = %#x, want 0x01", got)
	}
	if got := Mul(0, 200); got != 0 {
		t.Errorf("Mul(0,x) = %#x, want 0", got)
	}
	if got := Mul(1, 200); got != 200 {
		t.Errorf("Mul(1,x) = %#x, want 200", got)
	}
}

func TestMulMatchesShiftXORDefinition(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			table := Mul(byte(a), byte(b))
			direct := mulShiftXOR(byte(a), byte(b))
			if table != direct {
				t.Fatalf("Mul(%d,%d) = %#x via table, %#x via shift-xor", a, b, table, direct)
			}
		}
	}
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv, err := Inv(byte(a))
		if err != nil {
			t.Fatalf("Inv(%d) unexpected error: %v", a, err)
		}
		if got := Mul(byte(a), inv); got != 1 {
			t.Errorf("Mul(%d, Inv(%d)) = %d, want 1", a, a, got)
		}
	}
}

func TestInvOfZero(t *testing.T) {
	_, err := Inv(0)
	if err != ErrDivisionByZero {
		t.Fatalf("Inv(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Div(5, 0)
	if err != ErrDivisionByZero {
		t.Fatalf("Div(5,0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestDivKnownValue(t *testing.T) {
	got, err := Div(1, 1)
	if err != nil {
		t.Fatalf("Div(1,1) unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Div(1,1) = %d, want 1", got)
	}
}

func TestPowTableValues(t *testing.T) {
	cases := []struct {
		a    byte
		k    int
		want byte
	}{
		{a: 5, k: 0, want: 1},
		{a: 0, k: 3, want: 0},
		{a: 2, k: 1, want: 2},
	}
	for _, c := range cases {
		if got := Pow(c.a, c.k); got != c.want {
			t.Errorf("Pow(%d,%d) = %d, want %d", c.a, c.k, got, c.want)
		}
	}
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		k := rapid.IntRange(0, 10).Draw(t, "k")

		want := Element(1)
		for i := 0; i < k; i++ {
			want = Mul(want, a)
		}
		if got := Pow(a, k); got != want {
			t.Fatalf("Pow(%d,%d) = %d, want %d (via repeated Mul)", a, k, got, want)
		}
	})
}

func TestAddSliceMatchesElementwise(t *testing.T) {
	a := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []byte{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	dst := make([]byte, len(a))
	AddSlice(dst, a, b)
	for i := range dst {
		want := Add(a[i], b[i])
		if dst[i] != want {
			t.Errorf("AddSlice[%d] = %#x, want %#x", i, dst[i], want)
		}
	}
}

func TestPolyEvalHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2, evaluated at x=0 is the constant term.
	coeffs := []byte{1, 2, 3}
	if got := PolyEval(coeffs, 0); got != 1 {
		t.Errorf("PolyEval(p,0) = %d, want 1", got)
	}
	if got := PolyEval(nil, 5); got != 0 {
		t.Errorf("PolyEval(nil,x) = %d, want 0", got)
	}
}

func TestFieldLawsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		c := rapid.Byte().Draw(t, "c")

		if Add(a, b) != Add(b, a) {
			t.Fatal("addition not commutative")
		}
		if Add(Add(a, b), c) != Add(a, Add(b, c)) {
			t.Fatal("addition not associative")
		}
		if Add(a, a) != 0 {
			t.Fatal("a+a != 0")
		}
		if Mul(a, b) != Mul(b, a) {
			t.Fatal("multiplication not commutative")
		}
		if Mul(Mul(a, b), c) != Mul(a, Mul(b, c)) {
			t.Fatal("multiplication not associative")
		}
		if Mul(a, Add(b, c)) != Add(Mul(a, b), Mul(a, c)) {
			t.Fatal("multiplication does not distribute over addition")
		}
		if Mul(a, 1) != a {
			t.Fatal("a*1 != a")
		}
		if Mul(a, 0) != 0 {
			t.Fatal("a*0 != 0")
		}
		if a != 0 {
			inv, err := Inv(a)
			if err != nil {
				t.Fatalf("Inv(%d) unexpected error: %v", a, err)
			}
			if Mul(a, inv) != 1 {
				t.Fatal("a*inv(a) != 1")
			}
		}
	})
}
