package cm

// limit caps the observation count of a StateMap cell. Higher values
// lead to slower but more precise adaptation.
const limit = 127

// Layout of a StateMap cell. The upper 18 bits hold the probability
// that the next bit is 1, the lower 9 bits the observation count.
const (
	countMask  = 1<<9 - 1
	deltaMask  = ^uint32(countMask)
	probShift  = 14
	outShift   = 20
	cellInit   = 1 << 31
	smContexts = 1 << 16
)

// reciprocals provides the adaptation step for each count value. The
// step 32768/(2n+5) realizes a learning rate of roughly 1/(n+2.5).
var reciprocals = makeReciprocals()

func makeReciprocals() (r [countMask + 1]int32) {
	for i := range r {
		r[i] = int32(32768 / (i + i + 5))
	}
	return r
}

// StateMap maps a context to a probability. Every cell adapts toward
// the bits observed in its context with a rate that decreases with the
// number of observations.
type StateMap struct {
	// context of the last prediction
	cxt   int
	cells []uint32
}

// NewStateMap creates a StateMap with 2^16 contexts. All cells start
// with probability 1/2 and a count of zero.
func NewStateMap() *StateMap {
	sm := &StateMap{cells: make([]uint32, smContexts)}
	for i := range sm.cells {
		sm.cells[i] = cellInit
	}
	return sm
}

// P updates the cell of the previous prediction with bit and returns
// the 12-bit probability stored for context cx.
func (sm *StateMap) P(bit int, cx int) int {
	if !(0 <= cx && cx < len(sm.cells)) {
		panic("cm: StateMap context out of range")
	}
	sm.update(bit)
	sm.cxt = cx
	return int(sm.cells[cx] >> outShift)
}

// update adjusts the cell of the current context toward bit.
func (sm *StateMap) update(bit int) {
	if bit&^1 != 0 {
		panic("cm: bit must be 0 or 1")
	}
	c := &sm.cells[sm.cxt]
	n := *c & countMask
	pr := int32(*c >> probShift)
	if n < limit {
		*c++
	}
	// The product fits into 31 bits; the mask keeps the count intact.
	d := ((int32(bit) << 18) - pr) * reciprocals[n]
	*c += uint32(d) & deltaMask
}
