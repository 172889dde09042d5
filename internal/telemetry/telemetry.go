package telemetry

import (
	"context"

	"codeberg.org/mutker/envlogd/internal/errors"
	"codeberg.org/mutker/envlogd/internal/logger"
)

type service struct {
	repo Repository
	cfg  Config
}

// No-op implementation used when the journal is disabled
type noopCollector struct{}

// NewNoop returns a collector that records nothing, for callers that must
// keep running when the journal cannot be brought up
func NewNoop() Collector {
	return &noopCollector{}
}

func NewService(cfg Config) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		logger.Debug().Msg("Cycle journal disabled, using no-op collector")
		return &noopCollector{}, nil
	}

	repo, err := NewRepository(cfg, logger.Default())
	if err != nil {
		return nil, err // Already wrapped with appropriate error
	}

	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

func (s *service) Record(ctx context.Context, snapshot *CycleSnapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(ErrInvalidSnapshot)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
		if err := s.repo.Store(ctx, snapshot); err != nil {
			return errFactory.Wrap(ErrCycleCollection, err)
		}
	}

	return nil
}

func (s *service) Close() error {
	errFactory := errors.New()

	if err := s.repo.Close(); err != nil {
		return errFactory.Wrap(ErrServiceShutdown, err)
	}
	return nil
}

func (*noopCollector) Record(_ context.Context, _ *CycleSnapshot) error {
	return nil
}

func (*noopCollector) Close() error {
	return nil
}
