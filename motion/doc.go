// Package motion defines the capability interfaces shared by the transaction
// register and the scheduler.
//
// # Core Concepts
//
// Target: an opaque handle to any object a plan operates on. Targets compare by
// identity, so two handles created with the same ID are still distinct:
//
//	a := motion.NewTarget("view", textView)
//	b := motion.NewTarget("view", textView)
//	// a != b
//
// Plan: a unit of behavior. A plan names the kind of performer that executes
// it and knows how to create one for a target. The scheduler keeps one
// performer per (target, performer kind).
//
// NamedPlan: a plan that can be registered under a name on a target and later
// removed by that name. Its performer must implement NamedPerformer.
//
// Copier: optional. Plans implementing it are copied when handed to a
// scheduler, so later mutation by the caller does not leak into performers.
package motion
