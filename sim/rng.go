package sim

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"math"
)

// Rng is an xorshift128+ generator, as seen in Node.js 12. Raw 64-bit
// outputs are produced in batches of 64 words and consumed in reverse order
// within each batch; each word is right-shifted by 12 bits and spliced into
// the mantissa of 1.0, yielding uniform doubles in [0, 1) that match the
// reference generator bit for bit. The batch ordering and the per-decision
// draw counts are part of the reproducible contract.
//
// Two simulations seeded with the same words MUST produce identical draw
// sequences. Not thread-safe.
type Rng struct {
	state [2]uint64
	buf   [64]uint64
	rem   int // undrawn words remaining in buf, consumed from buf[rem-1] down
}

// NewRng creates a generator seeded from the operating system's entropy
// source. This path is non-deterministic and excluded from reproducibility
// guarantees; use SeededRng for reproducible runs.
func NewRng() *Rng {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("sim: failed to read entropy for rng seed: " + err.Error())
	}
	return SeededRng(
		binary.LittleEndian.Uint64(seed[0:8]),
		binary.LittleEndian.Uint64(seed[8:16]),
	)
}

// SeededRng creates a generator from two explicit 64-bit seed words.
func SeededRng(s0, s1 uint64) *Rng {
	r := &Rng{state: [2]uint64{s0, s1}}
	r.refill()
	return r
}

// next advances the xorshift128+ state by one step and returns the previous
// second word shifted into mantissa position.
func (r *Rng) next() uint64 {
	s1, s0 := r.state[0], r.state[1]
	r.state[0] = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0
	s1 ^= s0 >> 26
	r.state[1] = s1
	return s0 >> 12
}

func (r *Rng) refill() {
	for i := range r.buf {
		r.buf[i] = r.next()
	}
	r.rem = len(r.buf)
}

// NextFloat returns the next uniform double in [0, 1) with 52 bits of
// entropy.
func (r *Rng) NextFloat() float64 {
	if r.rem == 0 {
		r.refill()
	}
	r.rem--
	return math.Float64frombits(r.buf[r.rem]|0x3ff0_0000_0000_0000) - 1.0
}

// Choose selects one element uniformly from items, consuming exactly one
// draw regardless of length, including length 1 and length 0. The second
// return value is false only when items is empty.
func Choose[T any](r *Rng, items []T) (T, bool) {
	n := int(r.NextFloat() * float64(len(items)))
	if n >= len(items) {
		var zero T
		return zero, false
	}
	return items[n], true
}

// chooseRange picks uniformly from the half-open integer range [lo, hi),
// consuming exactly one draw.
func chooseRange(r *Rng, lo, hi int) int {
	return lo + int(r.NextFloat()*float64(hi-lo))
}

// rngState is the serialized form of Rng: the two state words plus the
// exact undrawn suffix of the current batch. Restoring it is equivalent to
// a no-op on the draw sequence.
type rngState struct {
	State [2]uint64 `json:"state"`
	Iter  []uint64  `json:"iter"`
}

func (r *Rng) MarshalJSON() ([]byte, error) {
	return json.Marshal(rngState{
		State: r.state,
		Iter:  append([]uint64(nil), r.buf[:r.rem]...),
	})
}

func (r *Rng) UnmarshalJSON(data []byte) error {
	var s rngState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.state = s.State
	r.rem = copy(r.buf[:], s.Iter)
	return nil
}
