package noise

import "fmt"

// Sequence replays a fixed list of samples, wrapping around when exhausted.
type Sequence struct {
	samples []float64
	pos     int
}

// NewSequence creates new Sequence noise from samples.
// It returns error if samples is empty.
func NewSequence(samples []float64) (*Sequence, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("invalid noise samples: %v", samples)
	}

	s := make([]float64, len(samples))
	copy(s, samples)

	return &Sequence{samples: s}, nil
}

// Sample returns the next sample in the sequence.
func (s *Sequence) Sample() float64 {
	v := s.samples[s.pos]
	s.pos = (s.pos + 1) % len(s.samples)

	return v
}

// Reset rewinds the sequence to its first sample.
func (s *Sequence) Reset() {
	s.pos = 0
}

// String implements the Stringer interface.
func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence{\nSamples=%v\n}", s.samples)
}
