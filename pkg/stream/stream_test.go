package stream

import (
	"testing"

	"github.com/agievich/GF2/pkg/bitword"
	"github.com/agievich/GF2/pkg/order"
	"github.com/agievich/GF2/pkg/util"
)

func TestMonom_RoundTrip(t *testing.T) {
	const n = 5

	p := NewParser("x1 x3 x4")

	m, err := ParseMonom(p, n)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !m.Has(1) || !m.Has(3) || !m.Has(4) || m.Deg() != 3 {
		t.Fatalf("unexpected monomial: %s", m)
	}

	if got := WriteMonom(m); got != "x1 x3 x4" {
		t.Errorf("got %q", got)
	}
}

func TestMonom_ConstantOne(t *testing.T) {
	p := NewParser("1")

	m, err := ParseMonom(p, 4)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !m.IsOne() {
		t.Errorf("expected constant monomial")
	}
}

func TestPolynomial_RoundTrip(t *testing.T) {
	const n = 4

	o := order.NewGrlex(n)
	p := NewParser("x0 x1 + x2 + 1")

	poly, err := ParsePolynomial(p, n, o)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if poly.Size() != 3 {
		t.Fatalf("expected 3 terms, got %d: %s", poly.Size(), WritePolynomial(poly))
	}

	// Re-parse the rendering and check that it yields the same
	// polynomial.
	rendered := WritePolynomial(poly)

	p2 := NewParser(rendered)

	poly2, err := ParsePolynomial(p2, n, o)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}

	if !poly.Equals(poly2) {
		t.Errorf("round trip mismatch: %s vs %s", rendered, WritePolynomial(poly2))
	}
}

func TestPolynomial_ZeroLiteral(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	p := NewParser("0")

	poly, err := ParsePolynomial(p, n, o)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !poly.IsEmpty() {
		t.Errorf("expected the zero polynomial")
	}
}

func TestIdeal_RoundTrip(t *testing.T) {
	const n = 3

	o := order.NewGrlex(n)
	p := NewParser("{x0, x1 + x2}")

	id, err := ParseIdeal(p, n, o)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if id.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", id.Len())
	}

	rendered := WriteIdeal(id)

	p2 := NewParser(rendered)

	id2, err := ParseIdeal(p2, n, o)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}

	if id2.Len() != id.Len() {
		t.Errorf("round trip member count mismatch: %d vs %d", id.Len(), id2.Len())
	}
}

func TestIdeal_Empty(t *testing.T) {
	const n = 2

	o := order.NewGrlex(n)
	p := NewParser("{}")

	id, err := ParseIdeal(p, n, o)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if id.Len() != 0 {
		t.Errorf("expected empty ideal")
	}
}

// TestBitWord_RoundTrip127 exercises a random N=127 BitWord round trip
// through the text grammar.
func TestBitWord_RoundTrip127(t *testing.T) {
	const n = 127

	w := bitword.New(n)
	w.Fill(util.Global())

	text := WriteBitWord(w)

	p := NewParser(text)

	w2, err := ParseBitWord(p)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !w.Equals(w2) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", w, w2)
	}
}

func TestInteger_DecimalAndHex(t *testing.T) {
	p := NewParser("1234")

	v, err := ParseInteger(p)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v != 1234 {
		t.Errorf("got %d", v)
	}

	p2 := NewParser("0x1F")

	v2, err := ParseInteger(p2)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v2 != 0x1F {
		t.Errorf("got %d", v2)
	}
}
