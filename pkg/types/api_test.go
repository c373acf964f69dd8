package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrKind
		expected string
	}{
		{name: "invalid", kind: ErrKindInvalid, expected: "invalid"},
		{name: "state", kind: ErrKindState, expected: "state"},
		{name: "unsupported", kind: ErrKindUnsupported, expected: "unsupported"},
		{name: "not found", kind: ErrKindNotFound, expected: "not_found"},
		{name: "format", kind: ErrKindFormat, expected: "format"},
		{name: "unknown", kind: ErrKind(42), expected: "kind_42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "plan is nil", ErrNilPlan.Error())

	wrapped := Wrap(ErrUnknownPlanKind, errors.New(`"spring"`))
	assert.Equal(t, `unknown plan kind: "spring"`, wrapped.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestWrap_MatchesSentinel(t *testing.T) {
	wrapped := Wrap(ErrBadEncoding, io.ErrUnexpectedEOF)
	outer := fmt.Errorf("operation 2 (AddNamed): %w", wrapped)

	require.ErrorIs(t, outer, ErrBadEncoding)
	require.ErrorIs(t, outer, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, outer, ErrBadPatch)

	// Wrap never mutates the sentinel
	assert.Nil(t, ErrBadEncoding.Err)
}

func TestError_IsDistinguishesSentinels(t *testing.T) {
	// Same kind, different message
	assert.NotErrorIs(t, ErrNilPlan, ErrNilTarget)
	assert.NotErrorIs(t, ErrNilPlan, io.EOF)
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("commit: %w", ErrAlreadyCommitted))
	require.True(t, ok)
	assert.Equal(t, ErrKindState, kind)

	kind, ok = KindOf(Wrap(ErrUnknownOp, errors.New("jump")))
	require.True(t, ok)
	assert.Equal(t, ErrKindNotFound, kind)

	_, ok = KindOf(io.EOF)
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}
