package cm

// apmBins gives the number of interpolation bins per context.
const apmBins = 33

// APM is an adaptive probability map. It refines a probability in a
// given context. The input probability is stretched and interpolated
// between 33 bins, which are closer together near 0 and 1. After each
// prediction the two bins around the input are adjusted toward the bit
// actually observed.
type APM struct {
	// index of the lower bin used by the last prediction
	idx  int
	n    int
	bins []uint16
}

// NewAPM creates an APM for n contexts. All contexts start with the
// identity mapping.
func NewAPM(n int) *APM {
	if n <= 0 {
		panic("cm: APM requires a positive number of contexts")
	}
	a := &APM{n: n, bins: make([]uint16, n*apmBins)}
	for j := 0; j < apmBins; j++ {
		a.bins[j] = uint16(Squash((j-16)*128) * 16)
	}
	for i := apmBins; i < len(a.bins); i += apmBins {
		copy(a.bins[i:i+apmBins], a.bins[:apmBins])
	}
	return a
}

// Contexts returns the number of contexts supported by the map.
func (a *APM) Contexts() int { return a.n }

// Refine adjusts the bins of the previous call for bit using the given
// rate and returns the refined probability for pr in context cxt. A
// lower rate results in faster adaptation.
func (a *APM) Refine(bit int, pr int, cxt int, rate uint) int {
	if !(0 <= pr && pr < 4096) {
		panic("cm: probability out of range")
	}
	if !(0 <= cxt && cxt < a.n) {
		panic("cm: APM context out of range")
	}
	a.update(bit, rate)

	s := Stretch(pr)
	w := s & 127
	a.idx = (s+2048)>>7 + cxt*apmBins
	return (int(a.bins[a.idx])*(128-w) + int(a.bins[a.idx+1])*w) >> 11
}

// update moves both bins of the last prediction toward the target
// value for bit.
func (a *APM) update(bit int, rate uint) {
	if bit&^1 != 0 {
		panic("cm: bit must be 0 or 1")
	}
	if !(0 < rate && rate < 32) {
		panic("cm: APM rate out of range")
	}
	g := bit<<16 + bit<<rate - bit - bit
	for i := a.idx; i <= a.idx+1; i++ {
		b := int(a.bins[i])
		a.bins[i] = uint16(b + (g-b)>>rate)
	}
}
