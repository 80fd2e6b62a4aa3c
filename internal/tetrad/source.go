package tetrad

// Sequence is a Source that replays fixed values, cycling when exhausted.
// Values are reduced modulo n, so shape and palette indexes can be mixed
// freely. Useful for deterministic tests and scripted demos.
type Sequence struct {
	vals []int
	pos  int
}

// NewSequence returns a Source replaying vals.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

// Pieces returns a Source that spawns the given shapes in order, each
// with the first palette color.
func Pieces(shapes ...Shape) *Sequence {
	vals := make([]int, 0, 2*len(shapes))
	for _, s := range shapes {
		vals = append(vals, int(s), 0)
	}
	return NewSequence(vals...)
}

// Intn implements Source.
func (s *Sequence) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
