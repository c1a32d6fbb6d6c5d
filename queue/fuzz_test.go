package queue

import (
	"testing"
)

// FuzzStrategyEquivalence interprets arbitrary bytes as an operation stream
// and applies it to both strategies plus a plain-slice model.
//
// The invariant is: at every step, every observation (dequeued values, peeks,
// length, emptiness) agrees across all three.
func FuzzStrategyEquivalence(f *testing.F) {
	// Seed: enqueue-only run
	f.Add([]byte{4, 8, 12, 16})

	// Seed: dequeue past empty
	f.Add([]byte{1, 1, 1})

	// Seed: fill, drain, refill (forces the reversal then rebuilds rear)
	f.Add([]byte{4, 8, 1, 1, 12, 1, 16, 20, 1, 1, 1})

	// Seed: peeks interleaved with updates
	f.Add([]byte{4, 2, 3, 8, 2, 3, 1, 2, 3})

	// Seed: empty input
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, ops []byte) {
		naive := NewNaiveQueue[int]()
		amortized := NewAmortizedQueue[int]()
		var model []int

		for step, op := range ops {
			switch op % 4 {
			case 0: // enqueue
				v := int(op)
				naive = naive.Enqueue(v)
				amortized = amortized.Enqueue(v)
				model = append(model, v)
			case 1: // dequeue
				nv, nq, nok := naive.Dequeue()
				av, aq, aok := amortized.Dequeue()
				wantOK := len(model) > 0
				if nok != wantOK || aok != wantOK {
					t.Fatalf("step %d: dequeue ok = (%v, %v), want %v", step, nok, aok, wantOK)
				}
				if wantOK {
					if nv != model[0] || av != model[0] {
						t.Fatalf("step %d: dequeue = (%d, %d), want %d", step, nv, av, model[0])
					}
					model = model[1:]
				}
				naive, amortized = nq, aq
			case 2: // peek front
				nv, nok := naive.Peek()
				av, aok := amortized.Peek()
				wantOK := len(model) > 0
				if nok != wantOK || aok != wantOK {
					t.Fatalf("step %d: peek ok = (%v, %v), want %v", step, nok, aok, wantOK)
				}
				if wantOK && (nv != model[0] || av != model[0]) {
					t.Fatalf("step %d: peek = (%d, %d), want %d", step, nv, av, model[0])
				}
			case 3: // peek back
				nv, nok := naive.PeekBack()
				av, aok := amortized.PeekBack()
				wantOK := len(model) > 0
				if nok != wantOK || aok != wantOK {
					t.Fatalf("step %d: peek-back ok = (%v, %v), want %v", step, nok, aok, wantOK)
				}
				if wantOK {
					want := model[len(model)-1]
					if nv != want || av != want {
						t.Fatalf("step %d: peek-back = (%d, %d), want %d", step, nv, av, want)
					}
				}
			}

			if naive.Length() != len(model) || amortized.Length() != len(model) {
				t.Fatalf("step %d: length = (%d, %d), want %d",
					step, naive.Length(), amortized.Length(), len(model))
			}
			if naive.IsEmpty() != (len(model) == 0) || amortized.IsEmpty() != (len(model) == 0) {
				t.Fatalf("step %d: emptiness disagrees with model", step)
			}
		}
	})
}
