// pattern: Functional Core

package tracking

// Scope owns a set of registrations and releases all of them at once.
// Registrations added after Close are released immediately.
type Scope struct {
	releases []Release
	closed   bool
}

// NewScope returns an empty, open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add takes ownership of r.
func (s *Scope) Add(r Release) {
	if r == nil {
		return
	}
	if s.closed {
		r()
		return
	}
	s.releases = append(s.releases, r)
}

// Close releases every owned registration in reverse order of acquisition.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Len returns the number of registrations still held.
func (s *Scope) Len() int {
	return len(s.releases)
}
