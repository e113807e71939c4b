package sbox

import (
	"testing"

	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
)

func termOf(n uint, vars ...uint) *monom.Monom {
	m := monom.New(n)
	for _, v := range vars {
		m.Word().Set(v, true)
	}

	return m
}

// TestBentFunction_MajoranaMcFarland exercises a quadratic
// Majorana-McFarland construction on 12 variables and checks it is
// bent (all Walsh-Hadamard coefficients have magnitude 2^6).
func TestBentFunction_MajoranaMcFarland(t *testing.T) {
	const n = 12

	ord := order.NewGrlex(n)
	p := poly.New(ord)

	p.SymDiffMonom(termOf(n, 0, 6))
	p.SymDiffMonom(termOf(n, 1, 7))
	p.SymDiffMonom(termOf(n, 2, 8))
	p.SymDiffMonom(termOf(n, 3, 9))
	p.SymDiffMonom(termOf(n, 4, 10))
	p.SymDiffMonom(termOf(n, 5, 11))

	f := FromANF(p, n)

	if !f.IsBent() {
		t.Errorf("expected a bent function")
	}
}

func TestBashSBox_Ideal(t *testing.T) {
	const n = 3

	table := []uint64{1, 2, 3, 4, 6, 7, 5, 0}

	s, err := FromTable(n, n, table)
	if err != nil {
		t.Fatalf("FromTable: %v", err)
	}

	if !s.IsBijection() {
		t.Fatalf("expected a bijection")
	}

	ord := order.NewGrevlex(2 * n)

	id := s.Ideal(ord)
	if id.Len() != n {
		t.Fatalf("expected %d generators, got %d", n, id.Len())
	}
}

func TestVBF_Nl_And_Deg(t *testing.T) {
	table := []uint64{2, 6, 3, 14, 12, 15, 7, 5, 11, 13, 8, 9, 10, 0, 4, 1}

	s, err := FromTable(4, 4, table)
	if err != nil {
		t.Fatalf("FromTable: %v", err)
	}

	if nl := s.Nl(); nl != 4 {
		t.Errorf("Nl: got %d, want 4", nl)
	}

	if deg := s.Deg(); deg != 3 {
		t.Errorf("Deg: got %d, want 3", deg)
	}
}

func TestVBF_InverseRoundTrip(t *testing.T) {
	table := []uint64{1, 2, 3, 4, 6, 7, 5, 0}

	s, err := FromTable(3, 3, table)
	if err != nil {
		t.Fatalf("FromTable: %v", err)
	}

	inv := s.Inverse()

	for x := uint(0); x < 8; x++ {
		if inv.Get(uint(s.Get(x))) != uint64(x) {
			t.Errorf("inverse mismatch at x=%d", x)
		}
	}
}

func TestBFunc_IsBalanced(t *testing.T) {
	f := NewBFunc(2)
	f.Set(0, false)
	f.Set(1, true)
	f.Set(2, true)
	f.Set(3, false)

	if !f.IsBalanced() {
		t.Errorf("expected a balanced function")
	}
}
