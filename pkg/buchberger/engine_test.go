package buchberger

import (
	"testing"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/ideal"
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
)

func mk(n uint, idx ...uint) *monom.Monom {
	w := bitword.New(n)
	for _, i := range idx {
		w.Set(i, true)
	}

	return monom.FromWord(w)
}

// TestEngine_SingleGeneratorIsAlreadyGB exercises the simplest possible
// session: a single generator needs no S-polynomials at all, and the
// resulting basis must already satisfy the Groebner-basis test.
func TestEngine_SingleGeneratorIsAlreadyGB(t *testing.T) {
	const n = 4

	o := order.NewGrlex(n)
	e := Init(n, o)

	e.Update(poly.FromMonoms(o, mk(n, 0), mk(n, 1)))
	e.Process()

	out := ideal.New(n, o)
	e.Done(out)

	if out.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", out.Len())
	}

	if !out.IsGB() {
		t.Errorf("expected a single generator to already be a Groebner basis")
	}
}

// TestEngine_TwoGeneratorsProduceAGB builds a tiny two-generator ideal
// and checks the final basis the engine reports is in fact a Groebner
// basis (i.e. every relevant S-polynomial does reduce to zero against
// it), independent of how many intermediate polynomials were produced.
func TestEngine_TwoGeneratorsProduceAGB(t *testing.T) {
	const n = 4

	o := order.NewGrlex(n)
	e := Init(n, o)

	e.Update(poly.FromMonoms(o, mk(n, 0, 1)))
	e.Update(poly.FromMonoms(o, mk(n, 1, 2), mk(n, 3)))
	e.Process()

	out := ideal.New(n, o)
	e.Done(out)

	if out.Len() == 0 {
		t.Fatalf("expected a nonempty basis")
	}

	if !out.IsGB() {
		t.Errorf("expected engine output to be a Groebner basis")
	}
}

// TestEngine_StatsAccumulate checks that Process leaves behind
// consistent, non-negative statistics and that Report renders without
// panicking.
func TestEngine_StatsAccumulate(t *testing.T) {
	const n = 5

	o := order.NewGrlex(n)
	e := Init(n, o)

	e.Update(poly.FromMonoms(o, mk(n, 0, 1)))
	e.Update(poly.FromMonoms(o, mk(n, 1, 2)))
	e.Update(poly.FromMonoms(o, mk(n, 2, 3, 4)))
	e.Process()

	stats := e.Stats()
	if stats.PairsProcessed == 0 && stats.ReducedToZero == 0 {
		t.Errorf("expected some pair activity for a 3-generator ideal")
	}

	report := stats.Report()
	if report == "" {
		t.Errorf("expected a non-empty stats report")
	}
}

// TestEngine_InitFromBasisSkipsPairConstruction checks that loading an
// existing basis directly produces no pending pairs.
func TestEngine_InitFromBasisSkipsPairConstruction(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	gb := ideal.New(n, o)
	gb.Insert(poly.FromMonoms(o, mk(n, 0)))

	e := InitFromBasis(n, o, gb)

	if len(e.pairs) != 0 {
		t.Errorf("expected no pairs after InitFromBasis, got %d", len(e.pairs))
	}

	out := ideal.New(n, o)
	e.Done(out)

	if out.Len() != 1 {
		t.Errorf("expected the loaded basis to round-trip, got %d members", out.Len())
	}
}
