package scheduler

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/joshuapare/motionkit/internal/logger"
	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/pkg/types"
)

// Applied contains statistics about what a call changed.
type Applied struct {
	PlansAdded        int `json:"plans_added"`
	NamedPlansAdded   int `json:"named_plans_added"`
	NamedPlansRemoved int `json:"named_plans_removed"`
	PerformersCreated int `json:"performers_created"`
}

// Add accumulates other into a.
func (a *Applied) Add(other Applied) {
	a.PlansAdded += other.PlansAdded
	a.NamedPlansAdded += other.NamedPlansAdded
	a.NamedPlansRemoved += other.NamedPlansRemoved
	a.PerformersCreated += other.PerformersCreated
}

// Ops returns the number of plan operations that reached a performer.
func (a Applied) Ops() int {
	return a.PlansAdded + a.NamedPlansAdded + a.NamedPlansRemoved
}

// targetState is the per-target bookkeeping.
type targetState struct {
	performers map[string]motion.Performer // by performer kind
	kinds      []string                    // creation order
	named      map[string]motion.NamedPerformer
}

// Scheduler routes plans to performers.
//
// The scheduler is NOT thread-safe. Only one goroutine should use it at a time.
type Scheduler struct {
	opt     Options
	log     *slog.Logger
	targets map[*motion.Target]*targetState
	order   []*motion.Target
}

// New creates a scheduler with the given options.
func New(opt Options) *Scheduler {
	log := opt.Logger
	if log == nil {
		log = logger.L
	}
	return &Scheduler{
		opt:     opt,
		log:     log,
		targets: make(map[*motion.Target]*targetState),
	}
}

// AddPlan associates plan with target and hands it to the target's performer
// for the plan's kind.
func (s *Scheduler) AddPlan(plan motion.Plan, target *motion.Target) (Applied, error) {
	var res Applied
	if err := checkAdd(plan, target); err != nil {
		return res, err
	}
	err := s.addPlan(plan, target, &res)
	return res, err
}

// AddNamedPlan associates plan with target under name.
//
// Any plan already registered under name on target is removed first. The
// receiving performer always sees RemovePlanNamed(name) followed by
// AddNamedPlan(plan, name).
func (s *Scheduler) AddNamedPlan(plan motion.NamedPlan, name string, target *motion.Target) (Applied, error) {
	var res Applied
	if err := checkAddNamed(plan, name, target); err != nil {
		return res, err
	}
	err := s.addNamedPlan(plan, name, target, &res)
	return res, err
}

// RemovePlanNamed removes the plan registered under name on target. It is a
// no-op if no such plan exists.
func (s *Scheduler) RemovePlanNamed(name string, target *motion.Target) (Applied, error) {
	var res Applied
	if err := checkRemoveNamed(name, target); err != nil {
		return res, err
	}
	s.removePlanNamed(name, target, &res)
	return res, nil
}

// Performers returns the performers created for target in creation order.
func (s *Scheduler) Performers(target *motion.Target) []motion.Performer {
	ts, ok := s.targets[target]
	if !ok {
		return nil
	}
	out := make([]motion.Performer, 0, len(ts.kinds))
	for _, k := range ts.kinds {
		out = append(out, ts.performers[k])
	}
	return out
}

// NamedPlans returns the names currently registered on target, sorted.
func (s *Scheduler) NamedPlans(target *motion.Target) []string {
	ts, ok := s.targets[target]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ts.named))
	for n := range ts.named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Targets returns the number of targets that have received at least one
// performer.
func (s *Scheduler) Targets() int {
	return len(s.order)
}

func (s *Scheduler) addPlan(plan motion.Plan, target *motion.Target, res *Applied) error {
	if s.opt.CopyPlans {
		plan = motion.Copy(plan)
	}

	performer, err := s.performerFor(plan, target, false, res)
	if err != nil {
		return err
	}
	performer.AddPlan(plan)
	res.PlansAdded++

	s.log.Debug("plan added", "target", target.ID(), "kind", plan.PerformerKind())
	return nil
}

func (s *Scheduler) addNamedPlan(plan motion.NamedPlan, name string, target *motion.Target, res *Applied) error {
	if s.opt.CopyPlans {
		if cp, ok := motion.Copy(plan).(motion.NamedPlan); ok {
			plan = cp
		}
	}

	p, err := s.performerFor(plan, target, true, res)
	if err != nil {
		return err
	}
	performer, ok := p.(motion.NamedPerformer)
	if !ok {
		return types.Wrap(types.ErrNotNamedPerformer, fmt.Errorf("kind %q", plan.PerformerKind()))
	}

	ts := s.targets[target]
	if prev, ok := ts.named[name]; ok && prev != performer {
		prev.RemovePlanNamed(name)
		s.log.Debug("named plan moved", "target", target.ID(), "name", name)
	}

	performer.RemovePlanNamed(name)
	performer.AddNamedPlan(plan, name)
	ts.named[name] = performer
	res.NamedPlansAdded++

	s.log.Debug("named plan added", "target", target.ID(), "name", name, "kind", plan.PerformerKind())
	return nil
}

func (s *Scheduler) removePlanNamed(name string, target *motion.Target, res *Applied) {
	ts, ok := s.targets[target]
	if !ok {
		return
	}
	performer, ok := ts.named[name]
	if !ok {
		s.log.Debug("named plan not registered", "target", target.ID(), "name", name)
		return
	}
	performer.RemovePlanNamed(name)
	delete(ts.named, name)
	res.NamedPlansRemoved++

	s.log.Debug("named plan removed", "target", target.ID(), "name", name)
}

// performerFor finds or creates the performer for plan's kind on target.
func (s *Scheduler) performerFor(plan motion.Plan, target *motion.Target, named bool, res *Applied) (motion.Performer, error) {
	kind := plan.PerformerKind()
	ts, known := s.targets[target]
	if known {
		if p, ok := ts.performers[kind]; ok {
			return p, nil
		}
	}

	var p motion.Performer
	if named {
		np, ok := plan.(motion.NamedPlan)
		if !ok {
			return nil, types.Wrap(types.ErrNotNamedPlan, fmt.Errorf("kind %q", kind))
		}
		if created := np.NewNamedPerformer(target); created != nil {
			p = created
		}
	} else {
		p = plan.NewPerformer(target)
	}
	if p == nil {
		return nil, fmt.Errorf("kind %q created a nil performer", kind)
	}

	if !known {
		ts = &targetState{
			performers: make(map[string]motion.Performer),
			named:      make(map[string]motion.NamedPerformer),
		}
		s.targets[target] = ts
		s.order = append(s.order, target)
	}
	ts.performers[kind] = p
	ts.kinds = append(ts.kinds, kind)
	res.PerformersCreated++

	s.log.Debug("performer created", "target", target.ID(), "kind", kind)
	return p, nil
}

func checkAdd(plan motion.Plan, target *motion.Target) error {
	if plan == nil {
		return types.ErrNilPlan
	}
	if target == nil {
		return types.ErrNilTarget
	}
	return nil
}

func checkAddNamed(plan motion.NamedPlan, name string, target *motion.Target) error {
	if plan == nil {
		return types.ErrNilPlan
	}
	if name == "" {
		return types.ErrEmptyName
	}
	if target == nil {
		return types.ErrNilTarget
	}
	return nil
}

func checkRemoveNamed(name string, target *motion.Target) error {
	if name == "" {
		return types.ErrEmptyName
	}
	if target == nil {
		return types.ErrNilTarget
	}
	return nil
}
