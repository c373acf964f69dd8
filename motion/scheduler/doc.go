// Package scheduler applies plans to targets through performers.
//
// The scheduler keeps one performer per (target, performer kind) and tracks
// which named plan is registered under each name on each target. Plans can be
// added directly or replayed from a transaction.Transaction with Commit.
//
// # Performers
//
// Every plan names a performer kind. The first plan of a kind to reach a
// target creates the performer; later plans of that kind on that target go
// to the same performer:
//
//	sched := scheduler.New(scheduler.DefaultOptions())
//	sched.AddPlan(fadeIn, view)   // creates the fade performer
//	sched.AddPlan(fadeOut, view)  // same performer
//
// # Named Plans
//
// A named plan replaces whatever was registered under the same name on the
// same target. Names are case-sensitive and scoped per target:
//
//	sched.AddNamedPlan(drag, "drag", view)
//	sched.AddNamedPlan(drag2, "drag", view) // performer: Remove("drag"), Add(drag2)
//	sched.RemovePlanNamed("drag", view)     // performer: Remove("drag")
//	sched.RemovePlanNamed("drag", view)     // nothing registered: no-op
//
// # Transactions
//
// Commit replays a transaction.Transaction in order after checking every
// operation up front:
//
//	applied, err := sched.Commit(ctx, txn)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d plans, %d named\n", applied.PlansAdded, applied.NamedPlansAdded)
package scheduler
