package flow

import (
	"context"
	"log/slog"
)

// StepStatus is the outcome of one named step of a multi-step commit.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// Step records one external call of a flow.
type Step struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	Err    error      `json:"-"`
}

// Steps runs named steps strictly in order. Once a step fails every later
// step is recorded as skipped. Steps that already succeeded are never undone.
type Steps struct {
	flow  string
	steps []Step
}

// NewSteps declares the ordered step names of a flow.
func NewSteps(flowName string, names ...string) *Steps {
	s := &Steps{flow: flowName}
	for _, name := range names {
		s.steps = append(s.steps, Step{Name: name, Status: StepPending})
	}
	return s
}

// Run executes the step called name. It returns the step error, or the
// error of an earlier failed step without calling fn.
func (s *Steps) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if err := s.Err(); err != nil {
		s.set(name, StepSkipped, nil)
		return err
	}
	if err := ctx.Err(); err != nil {
		s.set(name, StepSkipped, nil)
		return err
	}

	if err := fn(ctx); err != nil {
		slog.Default().Warn("flow step failed",
			"flow", s.flow,
			"step", name,
			"error", err)
		s.set(name, StepFailed, err)
		return err
	}
	s.set(name, StepSucceeded, nil)
	return nil
}

func (s *Steps) set(name string, status StepStatus, err error) {
	for i := range s.steps {
		if s.steps[i].Name == name {
			s.steps[i].Status = status
			s.steps[i].Err = err
			return
		}
	}
	s.steps = append(s.steps, Step{Name: name, Status: status, Err: err})
}

// Err returns the error of the first failed step.
func (s *Steps) Err() error {
	for _, step := range s.steps {
		if step.Status == StepFailed {
			return step.Err
		}
	}
	return nil
}

// Status returns the recorded status of name.
func (s *Steps) Status(name string) StepStatus {
	for _, step := range s.steps {
		if step.Name == name {
			return step.Status
		}
	}
	return StepPending
}

// List returns a copy of the recorded steps in declaration order.
func (s *Steps) List() []Step {
	return append([]Step(nil), s.steps...)
}
