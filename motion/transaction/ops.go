package transaction

import "github.com/joshuapare/motionkit/motion"

// OpType represents the type of transaction operation.
type OpType uint8

const (
	// OpAdd associates a plan with a target.
	OpAdd OpType = iota
	// OpAddNamed associates a named plan with a target under a name.
	OpAddNamed
	// OpRemoveNamed removes the plan registered under a name on a target.
	OpRemoveNamed
)

// String returns the string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case OpAdd:
		return "Add"
	case OpAddNamed:
		return "AddNamed"
	case OpRemoveNamed:
		return "RemoveNamed"
	default:
		return "Unknown"
	}
}

// Op represents a single pending operation.
type Op struct {
	// Type of operation to perform
	Type OpType

	// Plan is set for OpAdd. For OpAddNamed it holds the same value as
	// NamedPlan so consumers can read either field.
	Plan motion.Plan

	// NamedPlan is set for OpAddNamed only.
	NamedPlan motion.NamedPlan

	// Name is the plan name (OpAddNamed and OpRemoveNamed only)
	Name string

	// Target is the object the operation applies to
	Target *motion.Target
}

// Transaction is a register of operations that may be committed to a
// scheduler.
//
// Operations are kept in call order. Nothing is validated, deduplicated or
// reconciled here: adding the same plan twice yields two entries, and a
// RemovePlanNamed after an AddNamedPlan leaves both in place. The scheduler
// replays the operations in order when the transaction is committed.
//
// A Transaction is not safe for concurrent use.
//
// Deprecated: Add plans directly to a scheduler instead.
type Transaction struct {
	ops       []Op
	committed bool
}

// New creates a new empty Transaction.
//
// Deprecated: Add plans directly to a scheduler instead.
func New() *Transaction {
	return &Transaction{
		ops: make([]Op, 0),
	}
}

// AddPlan associates plan with target.
//
// Deprecated: Add plans directly to a scheduler instead.
func (t *Transaction) AddPlan(plan motion.Plan, target *motion.Target) {
	t.ops = append(t.ops, Op{
		Type:   OpAdd,
		Plan:   plan,
		Target: target,
	})
}

// AddNamedPlan associates a named plan with target under name.
//
// Deprecated: Add plans directly to a scheduler instead.
func (t *Transaction) AddNamedPlan(plan motion.NamedPlan, name string, target *motion.Target) {
	t.ops = append(t.ops, Op{
		Type:      OpAddNamed,
		Plan:      plan,
		NamedPlan: plan,
		Name:      name,
		Target:    target,
	})
}

// RemovePlanNamed removes any plan associated with name on target.
//
// Deprecated: Remove plans directly from a scheduler instead.
func (t *Transaction) RemovePlanNamed(name string, target *motion.Target) {
	t.ops = append(t.ops, Op{
		Type:   OpRemoveNamed,
		Name:   name,
		Target: target,
	})
}

// Len returns the number of operations in the transaction.
func (t *Transaction) Len() int {
	return len(t.ops)
}

// Ops returns a copy of the operations in call order.
func (t *Transaction) Ops() []Op {
	out := make([]Op, len(t.ops))
	copy(out, t.ops)
	return out
}

// MarkCommitted records that the transaction has been handed to a scheduler.
// It reports false if it was already committed.
func (t *Transaction) MarkCommitted() bool {
	if t.committed {
		return false
	}
	t.committed = true
	return true
}

// Committed reports whether the transaction has been handed to a scheduler.
func (t *Transaction) Committed() bool {
	return t.committed
}
