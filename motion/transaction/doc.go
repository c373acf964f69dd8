// Package transaction provides the deprecated Transaction register and the
// JSON patch format used to store transactions on disk.
//
// # Overview
//
// A Transaction is an ordered list of pending operations:
//   - OpAdd: associate a plan with a target
//   - OpAddNamed: associate a named plan with a target under a name
//   - OpRemoveNamed: remove whatever plan is registered under a name
//
// The register does not validate or reconcile anything. It records calls in
// order and hands them to a scheduler in one shot:
//
//	txn := transaction.New()
//	txn.AddPlan(fade, view)
//	txn.AddNamedPlan(drag, "drag", view)
//	txn.RemovePlanNamed("drag", view)
//	applied, err := sched.Commit(ctx, txn)
//
// New code should call the scheduler directly (scheduler.AddPlan and friends).
//
// # JSON Patches
//
//	{
//	    "operations": [
//	        {"op": "add", "target": "view", "plan": "log"},
//	        {"op": "add_named", "target": "view", "name": "drag", "plan": "counter"},
//	        {"op": "remove_named", "target": "view", "name": "drag"}
//	    ]
//	}
//
// Plan kinds are resolved through a Registry and target IDs through a
// motion.TargetSet. ParseOptions.InputEncoding accepts UTF-16 and
// Windows-1252 input; output is always UTF-8.
package transaction
