package ideal

import (
	"testing"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/monom"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/poly"
	"github.com/stretchr/testify/assert"
)

func mk(n uint, idx ...uint) *monom.Monom {
	w := bitword.New(n)
	for _, i := range idx {
		w.Set(i, true)
	}

	return monom.FromWord(w)
}

func TestIdeal_InsertIsIdempotent(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	id := New(n, o)

	p := poly.FromMonoms(o, mk(n, 0), mk(n, 1))

	_, inserted1 := id.Insert(p.Clone())
	_, inserted2 := id.Insert(p.Clone())

	assert.True(t, inserted1, "expected first insert to succeed")
	assert.False(t, inserted2, "expected duplicate insert to be a no-op")
	assert.Equal(t, 1, id.Len(), "expected exactly one member")
}

func TestIdeal_ReduceCancelsMultiples(t *testing.T) {
	const n = 4

	o := order.NewGrlex(n)
	id := New(n, o)
	id.Insert(poly.FromMonoms(o, mk(n, 0), mk(n, 1)))

	multiple := poly.FromMonoms(o, mk(n, 0, 2), mk(n, 1, 2))

	r, changed := id.Reduce(multiple)
	assert.True(t, changed, "expected a reduction to occur")
	assert.True(t, r.IsEmpty(), "expected the multiple to reduce to zero, got %s", r)
}

func TestIdeal_SelfReduceDropsRedundantGenerator(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	id := New(n, o)
	id.Insert(poly.FromMonoms(o, mk(n, 0)))
	// x0*x1 is an exact multiple of x0, so it must reduce to zero and be
	// dropped from the basis entirely.
	id.Insert(poly.FromMonoms(o, mk(n, 0, 1)))

	id.SelfReduce()

	assert.Equal(t, 1, id.Len(), "expected the redundant generator to vanish")
}

func TestIdeal_QuotientBasisDim_TrivialVariable(t *testing.T) {
	const n = 2

	o := order.NewGrlex(n)
	id := New(n, o)
	// <x0>: quotient ring is F2[x1]/(x1^2-x1), dimension 2.
	id.Insert(poly.FromMonoms(o, mk(n, 0)))

	assert.Equal(t, uint64(2), id.QuotientBasisDim())
}

func TestIdeal_QuotientBasisDim_EmptyIdealIsFullCube(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	id := New(n, o)

	assert.Equal(t, uint64(8), id.QuotientBasisDim(), "expected dim 2^3=8 for the zero ideal")
}

func TestIdeal_IsGB_TrueForSingleGenerator(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	id := New(n, o)
	id.Insert(poly.FromMonoms(o, mk(n, 0)))

	assert.True(t, id.IsGB(), "a single generator must trivially be a Groebner basis")
}
