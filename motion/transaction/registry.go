package transaction

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/pkg/types"
)

// Factory builds a plan from its serialized parameters. params is nil when
// the patch operation carried none.
type Factory func(params json.RawMessage) (motion.Plan, error)

// KindedPlan is implemented by plans that can be written to a patch.
// The kind must match the name the plan's Factory is registered under.
type KindedPlan interface {
	motion.Plan
	PlanKind() string
}

// Registry maps plan kinds to factories for patch decoding.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind string, f Factory) {
	r.factories[kind] = f
}

// Build creates a plan of the given kind.
func (r *Registry) Build(kind string, params json.RawMessage) (motion.Plan, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, types.Wrap(types.ErrUnknownPlanKind, fmt.Errorf("%q", kind))
	}
	plan, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("build plan %q: %w", kind, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("build plan %q: %w", kind, types.ErrNilPlan)
	}
	return plan, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
