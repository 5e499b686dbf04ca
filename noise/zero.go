package noise

// Zero is zero noise i.e. no noise
type Zero struct{}

// NewZero creates new zero noise and returns it.
func NewZero() *Zero {
	return &Zero{}
}

// Sample returns 0.
func (e *Zero) Sample() float64 {
	return 0
}

// Reset does nothing: it's here to implement filter.Noise interface
func (e *Zero) Reset() {}

// String implements the Stringer interface.
func (e *Zero) String() string {
	return "Zero{}"
}
