package scheduler

import (
	"context"
	"fmt"

	"github.com/joshuapare/motionkit/motion/transaction"
	"github.com/joshuapare/motionkit/pkg/types"
)

// Commit replays every operation of txn, in order.
//
// All operations are checked before any is applied. A nil plan, nil target,
// empty name or unknown operation fails the whole commit and leaves both the
// scheduler and txn untouched. A transaction can be committed once; later
// attempts return types.ErrAlreadyCommitted.
//
// The context is checked before each operation. If it is cancelled mid-way,
// the operations already applied stay applied and the transaction counts as
// committed.
//
// Returns Applied statistics (plans added, named plans removed, etc.).
func (s *Scheduler) Commit(ctx context.Context, txn *transaction.Transaction) (Applied, error) {
	var result Applied

	if txn == nil {
		return result, types.ErrNilTransaction
	}
	if txn.Committed() {
		return result, types.ErrAlreadyCommitted
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	ops := txn.Ops()
	for i := range ops {
		if err := checkOp(&ops[i]); err != nil {
			return result, fmt.Errorf("operation %d (%s): %w", i, ops[i].Type, err)
		}
	}

	txn.MarkCommitted()

	for i := range ops {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.applyOp(&ops[i], &result); err != nil {
			return result, fmt.Errorf("operation %d (%s): %w", i, ops[i].Type, err)
		}
	}

	s.log.Info("transaction committed",
		"ops", len(ops),
		"plans_added", result.PlansAdded,
		"named_added", result.NamedPlansAdded,
		"named_removed", result.NamedPlansRemoved,
		"performers_created", result.PerformersCreated,
	)
	return result, nil
}

// applyOp applies a single operation.
func (s *Scheduler) applyOp(op *transaction.Op, result *Applied) error {
	switch op.Type {
	case transaction.OpAdd:
		return s.addPlan(op.Plan, op.Target, result)

	case transaction.OpAddNamed:
		return s.addNamedPlan(op.NamedPlan, op.Name, op.Target, result)

	case transaction.OpRemoveNamed:
		s.removePlanNamed(op.Name, op.Target, result)
		return nil

	default:
		return types.ErrUnknownOp
	}
}

// checkOp verifies an operation can be applied.
func checkOp(op *transaction.Op) error {
	switch op.Type {
	case transaction.OpAdd:
		return checkAdd(op.Plan, op.Target)
	case transaction.OpAddNamed:
		return checkAddNamed(op.NamedPlan, op.Name, op.Target)
	case transaction.OpRemoveNamed:
		return checkRemoveNamed(op.Name, op.Target)
	default:
		return types.ErrUnknownOp
	}
}
