package chat

// FetchSequencer numbers thread fetches so that a slow, older fetch can never
// overwrite the result of a newer one.
type FetchSequencer struct {
	issued  uint64
	applied uint64
}

// Begin returns the generation for a fetch that is about to start.
// Generations increase strictly, starting at 1.
func (s *FetchSequencer) Begin() uint64 {
	s.issued++
	return s.issued
}

// Accept reports whether the result of fetch gen should be applied, and
// records it as the latest applied generation if so.
func (s *FetchSequencer) Accept(gen uint64) bool {
	if gen <= s.applied {
		return false
	}
	s.applied = gen
	return true
}

