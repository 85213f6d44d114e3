package extract

// ConstantSet maps constant names to declared values. It remembers the order
// in which names were first seen so reports are stable, and which names were
// declared more than once. A later declaration replaces an earlier one.
type ConstantSet struct {
	keys       []string
	values     map[string]string
	duplicates []string
}

// NewConstantSet returns an empty set.
func NewConstantSet() *ConstantSet {
	return &ConstantSet{values: make(map[string]string)}
}

// Set records name=value.
func (s *ConstantSet) Set(name, value string) {
	if _, exists := s.values[name]; exists {
		if !contains(s.duplicates, name) {
			s.duplicates = append(s.duplicates, name)
		}
	} else {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
}

// Get returns the value declared for name.
func (s *ConstantSet) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Keys returns the names in first-seen order.
func (s *ConstantSet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of distinct names.
func (s *ConstantSet) Len() int { return len(s.keys) }

// Duplicates returns the names that were declared more than once.
func (s *ConstantSet) Duplicates() []string {
	out := make([]string, len(s.duplicates))
	copy(out, s.duplicates)
	return out
}

// Map returns a copy of the name to value mapping.
func (s *ConstantSet) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
