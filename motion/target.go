package motion

import "fmt"

// Target is an opaque handle to the object a plan operates on.
//
// Targets are compared by pointer identity. ID is only used for logging and
// for patch serialization; it does not participate in equality.
type Target struct {
	id    string
	value any
}

// NewTarget creates a new target handle wrapping value.
func NewTarget(id string, value any) *Target {
	return &Target{id: id, value: value}
}

// ID returns the identifier the target was created with.
func (t *Target) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Value returns the wrapped object.
func (t *Target) Value() any {
	if t == nil {
		return nil
	}
	return t.value
}

// String implements fmt.Stringer.
func (t *Target) String() string {
	if t == nil {
		return "<nil target>"
	}
	return fmt.Sprintf("target(%s)", t.id)
}

// TargetSet resolves target IDs to handles, creating them on first use.
//
// It is used when decoding patches: every occurrence of the same ID within a
// set resolves to the same *Target.
type TargetSet struct {
	byID  map[string]*Target
	order []string
	value func(id string) any
}

// NewTargetSet creates an empty target set. Resolved targets wrap nil.
func NewTargetSet() *TargetSet {
	return &TargetSet{byID: make(map[string]*Target)}
}

// NewTargetSetWithValues creates an empty target set whose Resolve wraps
// value(id) in every target it creates.
func NewTargetSetWithValues(value func(id string) any) *TargetSet {
	return &TargetSet{byID: make(map[string]*Target), value: value}
}

// Bind registers an existing handle under its ID, replacing any previous
// binding. Use this to point patch IDs at live objects.
func (s *TargetSet) Bind(t *Target) {
	if t == nil {
		return
	}
	if _, ok := s.byID[t.id]; !ok {
		s.order = append(s.order, t.id)
	}
	s.byID[t.id] = t
}

// Resolve returns the handle for id, creating one if needed.
func (s *TargetSet) Resolve(id string) *Target {
	if t, ok := s.byID[id]; ok {
		return t
	}
	var v any
	if s.value != nil {
		v = s.value(id)
	}
	t := NewTarget(id, v)
	s.byID[id] = t
	s.order = append(s.order, id)
	return t
}

// Lookup returns the handle for id, if bound.
func (s *TargetSet) Lookup(id string) (*Target, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Targets returns all handles in first-seen order.
func (s *TargetSet) Targets() []*Target {
	out := make([]*Target, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of bound targets.
func (s *TargetSet) Len() int {
	return len(s.order)
}
