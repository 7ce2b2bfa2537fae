package services

// scriptedSource replays a fixed sequence, reducing each value modulo the
// requested bound. Exhausted scripts wrap around.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}
