package verifier

import (
	"testing"

	"github.com/rizkytaufiq/go-veristore/crosschecksum"
	"github.com/rizkytaufiq/go-veristore/erasure"
)

func fragmentsAndFPCC(t *testing.T, data []byte, n, m int) ([]erasure.Fragment, crosschecksum.FPCC) {
	t.Helper()
	fragments, err := erasure.Encode(data, n, m, "")
	if err != nil {
		t.Fatal(err)
	}
	fpcc, err := crosschecksum.Generate(fragments)
	if err != nil {
		t.Fatal(err)
	}
	return fragments, fpcc
}

func TestCheckAllFragmentsConsistent(t *testing.T) {
	fragments, fpcc := fragmentsAndFPCC(t, []byte("Hello, world!"), 5, 3)
	for _, f := range fragments {
		report := Check(f.Index, f.Data, fpcc)
		if report.Result != Consistent {
			t.Errorf("fragment %d: Result = %v, want Consistent", f.Index, report.Result)
		}
	}
}

func TestCheckDetectsHashMismatch(t *testing.T) {
	fragments, fpcc := fragmentsAndFPCC(t, []byte("Hello, world!"), 5, 3)
	corrupted := make([]byte, len(fragments[0].Data))
	copy(corrupted, fragments[0].Data)
	corrupted[0] ^= 0xFF

	report := Check(0, corrupted, fpcc)
	if report.Result != HashMismatch {
		t.Fatalf("Result = %v, want HashMismatch", report.Result)
	}
}

func TestCheckDetectsIndexError(t *testing.T) {
	_, fpcc := fragmentsAndFPCC(t, []byte("Hello, world!"), 5, 3)
	report := Check(99, []byte("anything"), fpcc)
	if report.Result != IndexError {
		t.Fatalf("Result = %v, want IndexError", report.Result)
	}
	report = Check(-1, []byte("anything"), fpcc)
	if report.Result != IndexError {
		t.Fatalf("Result = %v, want IndexError", report.Result)
	}
}

func TestCheckFPMismatchOnlyForDataFragments(t *testing.T) {
	// A parity fragment (index >= m) has no fingerprint to check; corrupting
	// its data so the hash itself differs is the only detectable failure,
	// which TestCheckDetectsHashMismatch already covers. Here we confirm a
	// correct parity fragment passes hash-only verification.
	fragments, fpcc := fragmentsAndFPCC(t, []byte("Hello, world!"), 5, 3)
	parity := fragments[4] // index 4 >= m=3
	report := Check(parity.Index, parity.Data, fpcc)
	if report.Result != Consistent {
		t.Fatalf("Result = %v, want Consistent", report.Result)
	}
	if report.FPChecked {
		t.Fatalf("FPChecked = true for parity fragment, want false")
	}
}

func TestBatchCheckNoShortCircuit(t *testing.T) {
	fragments, fpcc := fragmentsAndFPCC(t, []byte("Hello, world!"), 5, 3)
	corrupted := make([]byte, len(fragments[0].Data))
	copy(corrupted, fragments[0].Data)
	corrupted[0] ^= 0xFF

	items := []Item{
		{Index: 0, Data: corrupted},
		{Index: 1, Data: fragments[1].Data},
		{Index: 2, Data: fragments[2].Data},
	}
	reports := BatchCheck(items, fpcc)
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	if reports[0].Result != HashMismatch {
		t.Errorf("reports[0] = %v, want HashMismatch", reports[0].Result)
	}
	if reports[1].Result != Consistent || reports[2].Result != Consistent {
		t.Errorf("reports[1:] should remain Consistent despite reports[0] failing")
	}
}
