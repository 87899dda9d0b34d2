package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps_Run(t *testing.T) {
	stepErr := errors.New("insert failed")

	tests := []struct {
		name       string
		failAt     string
		wantCalls  []string
		wantStatus map[string]StepStatus
		wantErr    error
	}{
		{
			name:      "all steps succeed in order",
			wantCalls: []string{"one", "two", "three"},
			wantStatus: map[string]StepStatus{
				"one": StepSucceeded, "two": StepSucceeded, "three": StepSucceeded,
			},
		},
		{
			name:      "failure skips later steps and keeps earlier ones",
			failAt:    "two",
			wantCalls: []string{"one", "two"},
			wantStatus: map[string]StepStatus{
				"one": StepSucceeded, "two": StepFailed, "three": StepSkipped,
			},
			wantErr: stepErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := NewSteps("test", "one", "two", "three")
			var calls []string
			for _, name := range []string{"one", "two", "three"} {
				_ = steps.Run(context.Background(), name, func(ctx context.Context) error {
					calls = append(calls, name)
					if name == tt.failAt {
						return stepErr
					}
					return nil
				})
			}

			assert.Equal(t, tt.wantCalls, calls)
			for name, want := range tt.wantStatus {
				assert.Equal(t, want, steps.Status(name), name)
			}
			assert.Equal(t, tt.wantErr, steps.Err())
			require.Len(t, steps.List(), 3)
		})
	}
}

func TestSteps_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps := NewSteps("test", "only")
	called := false
	err := steps.Run(ctx, "only", func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, StepSkipped, steps.Status("only"))
}
