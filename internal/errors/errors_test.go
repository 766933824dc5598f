package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindOverflow,
				Struct: "PortInfo",
				Field:  "LID",
				Detail: "520 bits exceed 512",
			},
			contains: []string{"[validate]", "size_overflow", "PortInfo.LID", "520 bits exceed 512"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseGroup,
				Kind:  KindUnclosedGroup,
			},
			contains: []string{"[group]", "unclosed_group"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseOutput,
				Kind:   KindIO,
				Detail: "rename failed",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[output]", "io", "rename failed", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_IsMatchesPhaseAndKind(t *testing.T) {
	err := Schema("MADHeader", "status", KindWidth, "width must be non-zero")
	wrapped := fmt.Errorf("compile: %w", err)

	assert.True(t, errors.Is(wrapped, &Error{Phase: PhaseValidate, Kind: KindWidth}))
	assert.False(t, errors.Is(wrapped, &Error{Phase: PhaseValidate, Kind: KindOffset}))
	assert.False(t, errors.Is(wrapped, &Error{Phase: PhasePlan, Kind: KindWidth}))

	var target *Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "status", target.Field)
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root cause")
	err := New(PhaseGroup, KindUnclosedGroup).
		Struct("PortInfo").
		Field("localPortNum").
		Detail("group still open after %d bits", 12).
		Cause(cause).
		Build()

	assert.Equal(t, "PortInfo", err.Struct)
	assert.Equal(t, "localPortNum", err.Field)
	assert.Equal(t, "group still open after 12 bits", err.Detail)
	assert.Same(t, cause, errors.Unwrap(err))
}
