// Package plans provides small reference plans used by motionctl and tests.
//
//   - TextAppend appends callback markers to a *TextBuffer target
//   - Counter counts add/remove callbacks on a *Counters target
//   - Log appends a message to a *TextBuffer target and cannot be named
//
// Performers ignore targets whose value has the wrong type.
package plans

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/motion/transaction"
)

// Plan kinds as they appear in JSON patches.
const (
	KindTextAppend = "text_append"
	KindCounter    = "counter"
	KindLog        = "log"
)

// Markers appended by the TextAppend performer.
const (
	MarkerAdd         = "addInvoked"
	MarkerAddNamed    = "addPlanInvoked"
	MarkerRemoveNamed = "removePlanInvoked"
)

// TextBuffer is a mutable text target.
type TextBuffer struct {
	b strings.Builder
}

// Append adds s to the end of the buffer.
func (t *TextBuffer) Append(s string) { t.b.WriteString(s) }

// String returns the buffer contents.
func (t *TextBuffer) String() string { return t.b.String() }

// MarshalJSON encodes the buffer as a JSON string.
func (t *TextBuffer) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// Counters is a target that records performer callbacks.
type Counters struct {
	Adds    int `json:"adds"`
	Removes int `json:"removes"`
}

// -----------------------------------------------------------------------------
// TextAppend
// -----------------------------------------------------------------------------

// TextAppend appends a marker to a *TextBuffer for every callback it receives.
type TextAppend struct{}

func (TextAppend) PlanKind() string { return KindTextAppend }
func (TextAppend) PerformerKind() string { return "plans.text_append" }
func (TextAppend) CopyPlan() motion.Plan { return TextAppend{} }

func (TextAppend) NewPerformer(target *motion.Target) motion.Performer {
	return &textPerformer{target: target}
}

func (TextAppend) NewNamedPerformer(target *motion.Target) motion.NamedPerformer {
	return &textPerformer{target: target}
}

type textPerformer struct {
	target *motion.Target
}

func (p *textPerformer) append(s string) {
	if buf, ok := p.target.Value().(*TextBuffer); ok {
		buf.Append(s)
	}
}

func (p *textPerformer) AddPlan(motion.Plan) { p.append(MarkerAdd) }
func (p *textPerformer) AddNamedPlan(motion.NamedPlan, string) { p.append(MarkerAddNamed) }
func (p *textPerformer) RemovePlanNamed(string) { p.append(MarkerRemoveNamed) }

// -----------------------------------------------------------------------------
// Counter
// -----------------------------------------------------------------------------

// Counter adds Step (default 1) to a *Counters target for every add and
// counts removals.
type Counter struct {
	Step int `json:"step,omitempty"`
}

func (Counter) PlanKind() string { return KindCounter }
func (Counter) PerformerKind() string { return "plans.counter" }
func (c Counter) CopyPlan() motion.Plan { return Counter{Step: c.Step} }

func (Counter) NewPerformer(target *motion.Target) motion.Performer {
	return &counterPerformer{target: target}
}

func (Counter) NewNamedPerformer(target *motion.Target) motion.NamedPerformer {
	return &counterPerformer{target: target}
}

func (c Counter) step() int {
	if c.Step <= 0 {
		return 1
	}
	return c.Step
}

type counterPerformer struct {
	target *motion.Target
}

func (p *counterPerformer) counters() *Counters {
	c, _ := p.target.Value().(*Counters)
	return c
}

func (p *counterPerformer) AddPlan(plan motion.Plan) {
	if c := p.counters(); c != nil {
		c.Adds += stepOf(plan)
	}
}

func (p *counterPerformer) AddNamedPlan(plan motion.NamedPlan, _ string) {
	if c := p.counters(); c != nil {
		c.Adds += stepOf(plan)
	}
}

func (p *counterPerformer) RemovePlanNamed(string) {
	if c := p.counters(); c != nil {
		c.Removes++
	}
}

func stepOf(plan motion.Plan) int {
	if c, ok := plan.(Counter); ok {
		return c.step()
	}
	return 1
}

// -----------------------------------------------------------------------------
// Log
// -----------------------------------------------------------------------------

// Log appends Message (or MarkerAdd when empty) to a *TextBuffer. It is not
// a named plan.
type Log struct {
	Message string `json:"message,omitempty"`
}

func (Log) PlanKind() string { return KindLog }
func (Log) PerformerKind() string { return "plans.log" }
func (l Log) CopyPlan() motion.Plan { return Log{Message: l.Message} }

func (Log) NewPerformer(target *motion.Target) motion.Performer {
	return &logPerformer{target: target}
}

type logPerformer struct {
	target *motion.Target
}

func (p *logPerformer) AddPlan(plan motion.Plan) {
	buf, ok := p.target.Value().(*TextBuffer)
	if !ok {
		return
	}
	msg := MarkerAdd
	if l, ok := plan.(Log); ok && l.Message != "" {
		msg = l.Message
	}
	buf.Append(msg)
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// Registry returns a patch registry with every plan in this package.
func Registry() *transaction.Registry {
	reg := transaction.NewRegistry()
	reg.Register(KindTextAppend, func(json.RawMessage) (motion.Plan, error) {
		return TextAppend{}, nil
	})
	reg.Register(KindCounter, func(params json.RawMessage) (motion.Plan, error) {
		var c Counter
		if err := decodeParams(params, &c); err != nil {
			return nil, err
		}
		return c, nil
	})
	reg.Register(KindLog, func(params json.RawMessage) (motion.Plan, error) {
		var l Log
		if err := decodeParams(params, &l); err != nil {
			return nil, err
		}
		return l, nil
	})
	return reg
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, v)
}
