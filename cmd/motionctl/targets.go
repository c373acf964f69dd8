package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/plans"
)

// Target value kinds accepted by --target and --default-target.
const (
	targetText    = "text"
	targetCounter = "counter"
	targetNone    = "none"
)

func newTargetValue(kind string) (any, error) {
	switch kind {
	case targetText:
		return &plans.TextBuffer{}, nil
	case targetCounter:
		return &plans.Counters{}, nil
	case targetNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q (want text, counter or none)", kind)
	}
}

// buildTargetSet binds each "id=kind" spec and uses defaultKind for any
// other ID a patch mentions.
func buildTargetSet(specs []string, defaultKind string) (*motion.TargetSet, error) {
	if _, err := newTargetValue(defaultKind); err != nil {
		return nil, err
	}
	set := motion.NewTargetSetWithValues(func(string) any {
		v, _ := newTargetValue(defaultKind)
		return v
	})

	for _, spec := range specs {
		id, kind, ok := strings.Cut(spec, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid target %q (want id=kind)", spec)
		}
		v, err := newTargetValue(kind)
		if err != nil {
			return nil, err
		}
		set.Bind(motion.NewTarget(id, v))
	}
	return set, nil
}

// describeTarget renders a target's value for text output.
func describeTarget(t *motion.Target) string {
	switch v := t.Value().(type) {
	case *plans.TextBuffer:
		return fmt.Sprintf("%q", v.String())
	case *plans.Counters:
		return fmt.Sprintf("adds=%d removes=%d", v.Adds, v.Removes)
	default:
		return "-"
	}
}
