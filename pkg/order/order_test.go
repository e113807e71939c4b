package order

import (
	"testing"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/monom"
)

func mk(n uint, idx ...uint) *monom.Monom {
	w := bitword.New(n)
	for _, i := range idx {
		w.Set(i, true)
	}

	return monom.FromWord(w)
}

func TestLex_Compare(t *testing.T) {
	o := NewLex(4)

	a := mk(4, 0)
	b := mk(4, 3)

	if o.Compare(a, b) >= 0 {
		t.Errorf("expected x0 < x3 under lex (x3 more significant)")
	}
}

func TestGrlex_DegreeDominates(t *testing.T) {
	o := NewGrlex(4)

	low := mk(4, 3)    // degree 1
	high := mk(4, 0, 1) // degree 2

	if o.Compare(low, high) >= 0 {
		t.Errorf("expected lower-degree monomial to compare less under grlex")
	}
}

// TestGrlex_MatchesGradedLex checks S1: grlex.compare must agree with
// graded(lex).compare for every pair of monomials over N=6 variables.
func TestGrlex_MatchesGradedLex(t *testing.T) {
	const n = 6

	grlex := NewGrlex(n)
	graded := NewGraded(NewLex(n))

	total := uint64(1) << n
	for a := uint64(0); a < total; a++ {
		for b := uint64(0); b < total; b++ {
			ma := monom.FromWord(bitword.FromUint64(n, a))
			mb := monom.FromWord(bitword.FromUint64(n, b))

			if grlex.Compare(ma, mb) != graded.Compare(ma, mb) {
				t.Fatalf("mismatch at a=%d b=%d", a, b)
			}
		}
	}
}

func TestGrlex_NextCyclesAllMonomials(t *testing.T) {
	const n = 5

	o := NewGrlex(n)
	m := monom.FromWord(bitword.New(n))

	seen := map[string]bool{}
	count := 0

	for {
		seen[m.String()] = true
		count++

		if !o.Next(m) {
			break
		}

		if count > (1 << n) {
			t.Fatalf("Next did not terminate")
		}
	}

	if count != 1<<n {
		t.Errorf("expected %d distinct monomials, saw %d", 1<<n, count)
	}

	if !m.IsOne() {
		t.Errorf("expected wraparound to reset to the constant monomial")
	}
}

func TestGrevlex_DegreeDominates(t *testing.T) {
	o := NewGrevlex(4)

	low := mk(4, 3)
	high := mk(4, 0, 1)

	if o.Compare(low, high) >= 0 {
		t.Errorf("expected lower-degree monomial to compare less under grevlex")
	}
}

func TestGrevlex_TieBreak(t *testing.T) {
	o := NewGrevlex(3)

	// Both degree 1: x0 vs x1. Larger is the one missing the
	// smallest-index differing variable, i.e. x1 > x0 here: differing
	// at index 0, a has it set (so a is NOT the larger one).
	a := mk(3, 0)
	b := mk(3, 1)

	if o.Compare(a, b) >= 0 {
		t.Errorf("expected x0 < x1 under grevlex tie-break")
	}
}

func TestReversed_IsInvolution(t *testing.T) {
	base := NewLex(5)
	rev := NewReversed(base)
	revrev := NewReversed(rev)

	a := mk(5, 0, 2)
	b := mk(5, 1, 3)

	if revrev.Compare(a, b) != base.Compare(a, b) {
		t.Errorf("double reversal must equal the base order")
	}
}

func TestProductLR_LeftDominates(t *testing.T) {
	o1 := NewLex(2)
	o2 := NewLex(2)
	prod := NewProductLR(o1, 2, o2, 2)

	// a: left=01 (x1 set), right=00. b: left=00, right=11 (both right
	// vars set). Left block dominates, so a > b regardless of the right
	// block.
	a := mk(4, 1)
	b := mk(4, 2, 3)

	if prod.Compare(a, b) <= 0 {
		t.Errorf("expected left block to dominate in ProductLR")
	}
}

func TestProductRL_RightDominates(t *testing.T) {
	o1 := NewLex(2)
	o2 := NewLex(2)
	prod := NewProductRL(o1, 2, o2, 2)

	a := mk(4, 1)    // left=01, right=00
	b := mk(4, 2, 3) // left=00, right=11

	if prod.Compare(a, b) >= 0 {
		t.Errorf("expected right block to dominate in ProductRL")
	}
}

func TestAlex_EncodesLex(t *testing.T) {
	const n = 4
	// Rows [1,0,0,0], [0,1,0,0], [0,0,1,0], [0,0,0,1], projected bottom
	// row to top should reproduce Lex over 4 variables (bottom row most
	// significant = highest-index variable).
	rows := [][]int64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	alex := NewAlex(n, rows)
	lex := NewLex(n)

	a := mk(n, 0, 2)
	b := mk(n, 1, 3)

	if (alex.Compare(a, b) < 0) != (lex.Compare(a, b) < 0) {
		t.Errorf("alex encoding of lex disagreed with lex: alex=%d lex=%d",
			alex.Compare(a, b), lex.Compare(a, b))
	}
}

func TestOrder_EqualsDistinguishesParameters(t *testing.T) {
	a := NewLex(4)
	b := NewLex(5)
	c := NewLex(4)

	if a.Equals(b) {
		t.Errorf("orders over different N must not be equal")
	}

	if !a.Equals(c) {
		t.Errorf("orders with identical parameters must be equal")
	}
}
