package bitword

import (
	"testing"

	"github.com/agievich/GF2/pkg/util"
)

func TestWord_ReverseIsInvolution(t *testing.T) {
	const n = 37

	w := New(n)
	w.Fill(util.Global())

	if got := w.Reverse().Reverse(); !got.Equals(w) {
		t.Errorf("Reverse is not an involution: %s vs %s", got, w)
	}
}

func TestWord_PackUnpackAgreeOnMaskedBits(t *testing.T) {
	const n = 20

	w := New(n)
	w.Fill(util.Global())

	mask := New(n)
	mask.Fill(util.Global())

	packed := w.Pack(mask)
	unpacked := packed.Unpack(mask)

	for i := uint(0); i < n; i++ {
		if mask.Test(i) && unpacked.Test(i) != w.Test(i) {
			t.Errorf("bit %d: unpack(pack(w)) = %v, want %v", i, unpacked.Test(i), w.Test(i))
		}
	}
}

func TestWord_NextIsACyclicPermutationOfAllWords(t *testing.T) {
	const n = 5

	seen := make(map[string]bool)

	w := New(n)
	for i := 0; i < 1<<n; i++ {
		key := w.String()
		if seen[key] {
			t.Fatalf("Next revisited %s before completing a full cycle", key)
		}

		seen[key] = true

		w.Next()
	}

	if !w.IsAllZero() {
		t.Errorf("expected Next to cycle back to zero after 2^N steps, got %s", w)
	}

	if len(seen) != 1<<n {
		t.Errorf("expected %d distinct words, saw %d", 1<<n, len(seen))
	}
}

func TestWord_NextWeightIsACyclicPermutationOfFixedWeightWords(t *testing.T) {
	const n = 8
	const k = 3

	seen := make(map[string]bool)

	w := MinCombination(n, k)
	start := w.Clone()

	count := 0

	for {
		if w.Weight() != k {
			t.Fatalf("NextWeight left weight class: %s has weight %d, want %d", w, w.Weight(), k)
		}

		key := w.String()
		if seen[key] {
			t.Fatalf("NextWeight revisited %s before completing a full cycle", key)
		}

		seen[key] = true
		count++

		if !w.NextWeight() {
			break
		}
	}

	if !w.Equals(start) {
		t.Errorf("expected NextWeight to wrap back to the minimal combination, got %s", w)
	}

	want := binomial(n, k)
	if count != want {
		t.Errorf("expected C(%d,%d)=%d distinct combinations, saw %d", n, k, want, count)
	}
}

func binomial(n, k uint) int {
	result := 1
	for i := uint(0); i < k; i++ {
		result = result * int(n-i) / int(i+1)
	}

	return result
}

func TestWord_SetGetRoundTrip(t *testing.T) {
	const n = 16

	w := New(n)
	w.Set(0, true)
	w.Set(15, true)
	w.Set(7, true)

	for i := uint(0); i < n; i++ {
		want := i == 0 || i == 15 || i == 7
		if w.Test(i) != want {
			t.Errorf("bit %d: got %v, want %v", i, w.Test(i), want)
		}
	}

	if w.Weight() != 3 {
		t.Errorf("Weight: got %d, want 3", w.Weight())
	}
}

func TestWord_XorIsItsOwnInverse(t *testing.T) {
	const n = 31

	a := New(n)
	a.Fill(util.Global())

	b := New(n)
	b.Fill(util.Global())

	if got := a.Xor(b).Xor(b); !got.Equals(a) {
		t.Errorf("a xor b xor b != a: got %s, want %s", got, a)
	}
}

func TestWord_AndNotAndCoversAll(t *testing.T) {
	const n = 12

	a := New(n)
	a.Fill(util.Global())

	onlyA := a.AndNot(a.AndNot(a))
	if !onlyA.Equals(a) {
		t.Errorf("a andnot (a andnot a) should reproduce a")
	}
}
