package motion

// Plan is a unit of behavior applied to a target by a scheduler.
type Plan interface {
	// PerformerKind identifies the performer that executes this plan.
	// Plans with the same kind on the same target share one performer.
	PerformerKind() string

	// NewPerformer creates the performer for target. Called once per
	// (target, kind) the first time a plan of this kind reaches the target.
	NewPerformer(target *Target) Performer
}

// NamedPlan is a Plan that can be registered under a name and later removed
// by that name. Its performer must implement NamedPerformer.
type NamedPlan interface {
	Plan

	// NewNamedPerformer creates a performer able to handle named plans.
	NewNamedPerformer(target *Target) NamedPerformer
}

// Performer executes plans against a single target.
type Performer interface {
	// AddPlan is invoked for every unnamed plan added to the target.
	AddPlan(plan Plan)
}

// NamedPerformer is a Performer that also handles named plans.
type NamedPerformer interface {
	Performer

	// AddNamedPlan is invoked when a named plan is added.
	AddNamedPlan(plan NamedPlan, name string)

	// RemovePlanNamed is invoked when the plan registered under name is
	// replaced or removed.
	RemovePlanNamed(name string)
}

// Copier is implemented by plans that must be copied when handed to a
// scheduler.
type Copier interface {
	CopyPlan() Plan
}

// Copy returns plan.CopyPlan() when plan implements Copier, otherwise plan.
func Copy(plan Plan) Plan {
	if c, ok := plan.(Copier); ok {
		if cp := c.CopyPlan(); cp != nil {
			return cp
		}
	}
	return plan
}
