package cm

// Predictor estimates the probability that the next bit is 1. The
// compressor and the decompressor must call Update with exactly the
// same bit sequence.
type Predictor interface {
	// P returns the probability of a 1 bit scaled to [0,4096).
	P() int
	// Update informs the predictor about the bit actually coded.
	Update(bit int)
}

// history tracks the partial byte, the preceding bytes and the
// bit-history state of every partial-byte context. It provides the
// StateMap prediction both the StateMap and the APM predictor start
// from.
type history struct {
	// partial byte with leading 1; 0 before the first bit of a byte
	cxt int
	// last whole bytes, youngest in the low byte
	cxt4  uint32
	state [256]uint8
	sm    *StateMap
}

func newHistory() history {
	return history{sm: NewStateMap()}
}

// advance registers bit and returns the StateMap prediction for the
// next bit.
func (h *history) advance(bit int) int {
	h.state[h.cxt] = NextState(h.state[h.cxt], bit)
	h.cxt += h.cxt + bit
	if h.cxt >= 256 {
		h.cxt4 = h.cxt4<<8 | uint32(h.cxt-256)
		h.cxt = 0
	}
	return h.sm.P(bit, h.cxt*256+int(h.state[h.cxt]))
}

// checkP verifies that pr is a valid 12-bit probability.
func checkP(pr int) int {
	if !(0 <= pr && pr < 4096) {
		panic("cm: predictor probability out of range")
	}
	return pr
}

// StateMapPredictor maps the bit history of the partial byte directly
// to a probability.
type StateMapPredictor struct {
	h  history
	pr int
}

// NewStateMapPredictor creates a fresh StateMapPredictor.
func NewStateMapPredictor() *StateMapPredictor {
	return &StateMapPredictor{h: newHistory(), pr: 2048}
}

// P returns the probability for the next bit.
func (p *StateMapPredictor) P() int { return checkP(p.pr) }

// Update registers the bit.
func (p *StateMapPredictor) Update(bit int) {
	p.pr = p.h.advance(bit)
}

// Rates and sizes of the APM chain.
const (
	apmFastRate = 5
	apmSlowRate = 9
	apmRate     = 7

	// order-3 hash multiplier
	hashMul = 123456791
)

// APMPredictor refines the StateMap prediction with a chain of five
// APMs.
//
// apm[0] and apm[1] both use the partial byte as context, one adapts
// fast and the other slowly; their outputs are averaged. apm[2] uses an
// order-1 context. apm[3] uses the partial byte and the low 5 bits of
// the second byte back; it is weighted 3:1 with its input. apm[4] uses
// a 14-bit hash of the order-3 context and is averaged with its input.
type APMPredictor struct {
	h   history
	pr  int
	apm [5]*APM
}

// NewAPMPredictor creates a fresh APMPredictor.
func NewAPMPredictor() *APMPredictor {
	return &APMPredictor{
		h:  newHistory(),
		pr: 2048,
		apm: [5]*APM{
			NewAPM(256),
			NewAPM(256),
			NewAPM(1 << 16),
			NewAPM(1 << 13),
			NewAPM(1 << 14),
		},
	}
}

// P returns the probability for the next bit.
func (p *APMPredictor) P() int { return checkP(p.pr) }

// Update registers the bit and computes the next prediction. The order
// of the APM calls and the weights are part of the compressed format.
func (p *APMPredictor) Update(bit int) {
	pr := p.h.advance(bit)
	cxt, cxt4 := p.h.cxt, p.h.cxt4

	pr = (p.apm[0].Refine(bit, pr, cxt, apmFastRate) +
		p.apm[1].Refine(bit, pr, cxt, apmSlowRate) + 1) >> 1

	c1 := cxt | int(cxt4<<8)&0xff00
	pr = p.apm[2].Refine(bit, pr, c1, apmRate)

	c2 := cxt | int(cxt4&0x1f00)
	pr = (p.apm[3].Refine(bit, pr, c2, apmRate)*3 + pr + 2) >> 2

	c3 := cxt ^ int(((cxt4&0xffffff)*hashMul)>>18)
	pr = (p.apm[4].Refine(bit, pr, c3, apmRate) + pr + 1) >> 1

	p.pr = pr
}

// Order0Predictor uses a single adaptive probability for every partial
// byte including the continuation bit preceding it.
type Order0Predictor struct {
	// partial byte with leading 1; includes the continuation bit
	cxt   int
	probs [512]uint32
}

// NewOrder0Predictor creates a fresh Order0Predictor.
func NewOrder0Predictor() *Order0Predictor {
	p := &Order0Predictor{cxt: 1}
	for i := range p.probs {
		p.probs[i] = 1 << 15
	}
	return p
}

// P returns the probability for the next bit.
func (p *Order0Predictor) P() int { return checkP(int(p.probs[p.cxt] >> 4)) }

// Update adapts the probability of the current context with rate 1/32
// and advances the context.
func (p *Order0Predictor) Update(bit int) {
	if bit&^1 != 0 {
		panic("cm: bit must be 0 or 1")
	}
	q := &p.probs[p.cxt]
	if bit == 1 {
		*q += (1<<16 - *q) >> 5
	} else {
		*q -= *q >> 5
	}
	p.cxt += p.cxt + bit
	if p.cxt >= 512 {
		p.cxt = 1
	}
}

// countLimit bounds the bit counts of the CountPredictor.
const countLimit = 65534

// CountPredictor estimates the probability from the number of zeros and
// ones observed in the partial-byte context. Both counts are halved if
// one of them exceeds countLimit.
type CountPredictor struct {
	// partial byte with leading 1; includes the continuation bit
	cxt    int
	counts [512][2]uint32
}

// NewCountPredictor creates a fresh CountPredictor.
func NewCountPredictor() *CountPredictor {
	return &CountPredictor{cxt: 1}
}

// P returns the probability for the next bit.
func (p *CountPredictor) P() int {
	n := &p.counts[p.cxt]
	return checkP(int(4096 * (n[1] + 1) / (n[0] + n[1] + 2)))
}

// Update counts the bit and advances the context.
func (p *CountPredictor) Update(bit int) {
	if bit&^1 != 0 {
		panic("cm: bit must be 0 or 1")
	}
	n := &p.counts[p.cxt]
	n[bit]++
	if n[bit] > countLimit {
		n[0] >>= 1
		n[1] >>= 1
	}
	p.cxt += p.cxt + bit
	if p.cxt >= 512 {
		p.cxt = 1
	}
}
