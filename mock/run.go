package mock

import (
	"context"

	"github.com/fwojciec/imdbtop"
)

var _ imdbtop.RunService = (*RunService)(nil)

// RunService is a mock implementation of imdbtop.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *imdbtop.Run, html string) error
	FindRunsFn  func(ctx context.Context, filter imdbtop.RunFilter) ([]*imdbtop.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *imdbtop.Run, html string) error {
	return s.CreateRunFn(ctx, run, html)
}

func (s *RunService) FindRuns(ctx context.Context, filter imdbtop.RunFilter) ([]*imdbtop.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
