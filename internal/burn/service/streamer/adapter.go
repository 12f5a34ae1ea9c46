// Package streamer drives the periodic refresh of the active resolution and pushes changed
// series to presenters.
package streamer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/internal/clock"
	"go.uber.org/zap"
)

// Options tunes the refresh loop. Zero values fall back to the defaults.
type Options struct {
	RefreshInterval time.Duration
	Delay           time.Duration
}

// Adapter refreshes one resolution at a time. Ticks run one after another on the goroutine
// calling Run; SetResolution, Snapshot and Refresh may be called from anywhere.
type Adapter struct {
	logger          *zap.Logger
	registry        *model.Registry
	pipeline        Pipeline
	cache           Cache
	presenter       Presenter
	metrics         Metrics
	refreshInterval time.Duration
	delay           time.Duration
	now             func() time.Time
	wait            func(context.Context, time.Duration, <-chan struct{}) (bool, error)
	wake            chan struct{}

	// writeMu serializes cache writes of ticks and Refresh.
	writeMu sync.Mutex

	mu         sync.RWMutex
	resolution model.Resolution
	state      State
}

// NewAdapter builds an Adapter starting on the initial resolution.
func NewAdapter(
	registry *model.Registry,
	pipeline Pipeline,
	cache Cache,
	presenter Presenter,
	metrics Metrics,
	initial model.Resolution,
	opts Options,
	logger *zap.Logger,
) (*Adapter, error) {
	if registry == nil {
		return nil, errors.New("resolution registry is required")
	}
	if pipeline == nil {
		return nil, errors.New("series pipeline is required")
	}
	if cache == nil {
		return nil, errors.New("series cache is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if metrics == nil {
		return nil, errors.New("streamer metrics is required")
	}
	if _, err := registry.Lookup(initial); err != nil {
		return nil, err
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}

	return &Adapter{
		logger:          logger,
		registry:        registry,
		pipeline:        pipeline,
		cache:           cache,
		presenter:       presenter,
		metrics:         metrics,
		refreshInterval: opts.RefreshInterval,
		delay:           opts.Delay,
		now:             time.Now,
		wait:            clock.Wait,
		wake:            make(chan struct{}, 1),
		resolution:      initial,
		state:           Idle,
	}, nil
}

// Run refreshes until ctx is canceled. Tick failures never stop the loop.
func (a *Adapter) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := a.tick(ctx); err != nil && !errors.Is(err, model.ErrStaleNoOp) && ctx.Err() == nil {
			a.logger.Warn("refresh tick failed", zap.Error(err), zap.Duration("sleep", a.refreshInterval))
		}
		woken, err := a.wait(ctx, a.refreshInterval, a.wake)
		if err != nil {
			return err
		}
		if woken {
			a.logger.Debug("out-of-band refresh", zap.String("resolution", string(a.Resolution())))
		}
	}
}

func (a *Adapter) tick(ctx context.Context) error {
	res := a.Resolution()
	cfg, err := a.registry.Lookup(res)
	if err != nil {
		return err
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	started := a.now()
	a.setState(Fetching)
	series, err := a.pipeline.Fetch(ctx, cfg)
	if ctx.Err() != nil {
		a.setState(Idle)
		return ctx.Err()
	}
	if err != nil {
		a.metrics.ObserveTick(res, err, started)
		a.setState(Idle)
		return err
	}

	a.setState(Merging)
	merged, err := a.cache.Merge(res, series)
	a.metrics.ObserveTick(res, err, started)
	if err != nil {
		if errors.Is(err, model.ErrStaleNoOp) {
			a.logger.Debug("nothing new since cursor", zap.String("resolution", string(res)))
		}
		a.setState(Idle)
		return err
	}

	if a.Resolution() != res {
		a.logger.Debug("resolution switched during tick, skipping render", zap.String("resolution", string(res)))
		a.setState(Idle)
		return nil
	}

	a.render(ctx, cfg, merged)
	a.setState(Rendered)
	return nil
}

// SetResolution switches the active resolution, immediately renders what is cached for it and
// requests an out-of-band refresh.
func (a *Adapter) SetResolution(ctx context.Context, res model.Resolution) error {
	cfg, err := a.registry.Lookup(res)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.resolution = res
	a.mu.Unlock()

	series, err := a.cache.ActiveSeries(res)
	if err != nil {
		return err
	}
	a.render(ctx, cfg, series)
	a.Wake()
	return nil
}

// Snapshot builds the update the presenter would receive for res right now.
func (a *Adapter) Snapshot(res model.Resolution) (model.SeriesUpdate, error) {
	cfg, err := a.registry.Lookup(res)
	if err != nil {
		return model.SeriesUpdate{}, err
	}
	series, err := a.cache.ActiveSeries(res)
	if err != nil {
		return model.SeriesUpdate{}, err
	}
	return a.update(cfg, series), nil
}

// Refresh serves res for readers that found nothing cached. The active resolution is left to the
// tick loop, which is woken instead. Any other resolution is fetched and merged once, serialized with
// ticks; if it became active meanwhile the merged series is rendered too.
func (a *Adapter) Refresh(ctx context.Context, res model.Resolution) (model.SeriesUpdate, error) {
	cfg, err := a.registry.Lookup(res)
	if err != nil {
		return model.SeriesUpdate{}, err
	}
	if res == a.Resolution() {
		a.Wake()
		return a.Snapshot(res)
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	cached, err := a.cache.ActiveSeries(res)
	if err != nil {
		return model.SeriesUpdate{}, err
	}
	if len(cached) > 0 {
		return a.update(cfg, cached), nil
	}

	series, err := a.pipeline.Fetch(ctx, cfg)
	if err != nil {
		return model.SeriesUpdate{}, err
	}
	merged, err := a.cache.Merge(res, series)
	switch {
	case errors.Is(err, model.ErrStaleNoOp):
		return a.Snapshot(res)
	case err != nil:
		return model.SeriesUpdate{}, err
	}
	if a.Resolution() == res {
		a.render(ctx, cfg, merged)
	}
	return a.update(cfg, merged), nil
}

// Wake requests an out-of-band refresh of the active resolution.
func (a *Adapter) Wake() {
	clock.Notify(a.wake)
}

// Resolution returns the active resolution.
func (a *Adapter) Resolution() model.Resolution {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.resolution
}

// State returns the current refresh cycle state.
func (a *Adapter) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *Adapter) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Adapter) render(ctx context.Context, cfg model.ResolutionConfig, series model.Series) {
	err := a.presenter.OnUpdate(ctx, a.update(cfg, series))
	a.metrics.ObserveRender(cfg.Resolution, err)
	if err != nil {
		a.logger.Warn("present series update failed",
			zap.String("resolution", string(cfg.Resolution)),
			zap.Error(err))
	}
}

// update frames series in a window ending delay before now.
func (a *Adapter) update(cfg model.ResolutionConfig, series model.Series) model.SeriesUpdate {
	axisMax := a.now().Add(-a.delay)
	axisMin := axisMax.Add(-cfg.WindowDuration)

	return model.SeriesUpdate{
		Resolution: cfg.Resolution,
		Series:     series,
		Meta: model.SeriesMeta{
			Title:             cfg.Title,
			TooltipLabel:      cfg.TooltipLabel,
			WindowDurationMs:  cfg.WindowDuration.Milliseconds(),
			DelayMs:           a.delay.Milliseconds(),
			AxisMinMs:         axisMin.UnixMilli(),
			AxisMaxMs:         axisMax.UnixMilli(),
			AnnotationVisible: cfg.AnnotationVisible,
			LastBlock:         series.LastBlock(),
		},
	}
}
