package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/motionkit/internal/durable"
	"github.com/joshuapare/motionkit/internal/textenc"
	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/pkg/types"
)

// PatchOperation represents a single operation in a JSON patch.
type PatchOperation struct {
	Op     string          `json:"op"`     // "add", "add_named", "remove_named"
	Target string          `json:"target"` // target ID, resolved through a TargetSet
	Name   string          `json:"name,omitempty"`
	Plan   string          `json:"plan,omitempty"` // plan kind, resolved through a Registry
	Params json.RawMessage `json:"params,omitempty"`
}

// Patch represents a collection of operations in JSON format.
type Patch struct {
	Operations []PatchOperation `json:"operations"`
}

// ParseOptions configures patch decoding.
type ParseOptions struct {
	// InputEncoding declares the patch text encoding ("UTF-8", "UTF-16LE",
	// "UTF-16BE", "WINDOWS-1252"). Empty means UTF-8. A byte order mark
	// overrides it.
	InputEncoding string
}

// ParseJSONPatch parses a UTF-8 JSON patch into a Transaction.
//
// Plans are built through reg. Target IDs are resolved through targets, so
// repeated IDs map to the same handle and pre-bound IDs map to live objects.
func ParseJSONPatch(data []byte, reg *Registry, targets *motion.TargetSet) (*Transaction, error) {
	return ParseJSONPatchWithOptions(data, reg, targets, ParseOptions{})
}

// ParseJSONPatchWithOptions is ParseJSONPatch with explicit decoding options.
func ParseJSONPatchWithOptions(data []byte, reg *Registry, targets *motion.TargetSet, opts ParseOptions) (*Transaction, error) {
	text, err := textenc.Decode(data, opts.InputEncoding)
	if err != nil {
		return nil, types.Wrap(types.ErrBadEncoding, err)
	}

	var patch Patch
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return nil, types.Wrap(types.ErrBadPatch, err)
	}

	t := New()
	for i := range patch.Operations {
		op, err := convertPatchOp(&patch.Operations[i], reg, targets)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		t.ops = append(t.ops, *op)
	}

	return t, nil
}

// convertPatchOp converts a PatchOperation to an Op.
func convertPatchOp(patchOp *PatchOperation, reg *Registry, targets *motion.TargetSet) (*Op, error) {
	if patchOp.Target == "" {
		return nil, fmt.Errorf("%s: %w", patchOp.Op, types.ErrNilTarget)
	}

	op := &Op{}

	switch patchOp.Op {
	case "add":
		op.Type = OpAdd
		plan, err := reg.Build(patchOp.Plan, patchOp.Params)
		if err != nil {
			return nil, err
		}
		op.Plan = plan

	case "add_named":
		op.Type = OpAddNamed
		if patchOp.Name == "" {
			return nil, fmt.Errorf("%s: %w", patchOp.Op, types.ErrEmptyName)
		}
		plan, err := reg.Build(patchOp.Plan, patchOp.Params)
		if err != nil {
			return nil, err
		}
		named, ok := plan.(motion.NamedPlan)
		if !ok {
			return nil, types.Wrap(types.ErrNotNamedPlan, fmt.Errorf("%q", patchOp.Plan))
		}
		op.Plan = named
		op.NamedPlan = named
		op.Name = patchOp.Name

	case "remove_named":
		op.Type = OpRemoveNamed
		if patchOp.Name == "" {
			return nil, fmt.Errorf("%s: %w", patchOp.Op, types.ErrEmptyName)
		}
		op.Name = patchOp.Name

	default:
		return nil, types.Wrap(types.ErrUnknownOp, fmt.Errorf("%q", patchOp.Op))
	}

	// Resolve last so a failed op does not leave a dangling target behind.
	op.Target = targets.Resolve(patchOp.Target)
	return op, nil
}

// MarshalJSONPatch converts a Transaction to JSON patch format.
//
// Every plan must implement KindedPlan. Plan parameters are the plan's own
// JSON encoding; plans that encode to an empty object carry no params.
func MarshalJSONPatch(t *Transaction) ([]byte, error) {
	patch := Patch{
		Operations: make([]PatchOperation, 0, len(t.ops)),
	}

	for i := range t.ops {
		patchOp, err := convertOpToPatch(&t.ops[i])
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		patch.Operations = append(patch.Operations, *patchOp)
	}

	return json.MarshalIndent(patch, "", "  ")
}

// convertOpToPatch converts an Op to a PatchOperation.
func convertOpToPatch(op *Op) (*PatchOperation, error) {
	if op.Target == nil {
		return nil, types.ErrNilTarget
	}
	patchOp := &PatchOperation{
		Target: op.Target.ID(),
	}

	switch op.Type {
	case OpAdd:
		patchOp.Op = "add"
		if err := encodePlan(patchOp, op.Plan); err != nil {
			return nil, err
		}
	case OpAddNamed:
		patchOp.Op = "add_named"
		patchOp.Name = op.Name
		if op.NamedPlan == nil {
			return nil, types.ErrNilPlan
		}
		if err := encodePlan(patchOp, op.NamedPlan); err != nil {
			return nil, err
		}
	case OpRemoveNamed:
		patchOp.Op = "remove_named"
		patchOp.Name = op.Name
	default:
		return nil, types.Wrap(types.ErrUnknownOp, fmt.Errorf("type %d", op.Type))
	}

	return patchOp, nil
}

func encodePlan(patchOp *PatchOperation, plan motion.Plan) error {
	if plan == nil {
		return types.ErrNilPlan
	}
	kinded, ok := plan.(KindedPlan)
	if !ok {
		return types.Wrap(types.ErrPlanNotKinded, fmt.Errorf("%T", plan))
	}
	patchOp.Plan = kinded.PlanKind()

	params, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode params for %q: %w", patchOp.Plan, err)
	}
	if !bytes.Equal(params, []byte("{}")) && !bytes.Equal(params, []byte("null")) {
		patchOp.Params = params
	}
	return nil
}

// SyncMode controls durability of WritePatchFile.
type SyncMode = durable.Mode

// Sync modes for WritePatchFile.
const (
	SyncAuto = durable.SyncAuto
	SyncNone = durable.SyncNone
	SyncFull = durable.SyncFull
)

// ReadPatchFile reads and parses a JSON patch file.
func ReadPatchFile(path string, reg *Registry, targets *motion.TargetSet, opts ParseOptions) (*Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONPatchWithOptions(data, reg, targets, opts)
}

// WritePatchFile writes t to path as canonical UTF-8 JSON, replacing any
// existing file atomically.
func WritePatchFile(ctx context.Context, path string, t *Transaction, mode SyncMode) error {
	data, err := MarshalJSONPatch(t)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return durable.WriteFile(ctx, path, data, 0o644, mode)
}
