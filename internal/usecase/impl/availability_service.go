package impl

import (
	"context"
	"log/slog"
	"sync"

	"rental/config"
	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/calendar"
	"rental/internal/domain/entity"
	"rental/internal/domain/geo"
	"rental/internal/domain/repository"
	"rental/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMatchRadiusMiles = 25.0
	defaultSearchWorkers    = 10
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	propertyRepo     repository.PropertyRepository
	ledger           usecase.BookingUsecase
	matchRadiusMiles float64
	maxRadiusMiles   float64
	workers          int
	logger           *slog.Logger
}

// AvailabilityServiceParams holds dependencies for the availability engine, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Ledger       usecase.BookingUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAvailabilityService creates the availability query engine.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	srv := &availabilityService{
		propertyRepo:     params.PropertyRepo,
		ledger:           params.Ledger,
		matchRadiusMiles: defaultMatchRadiusMiles,
		workers:          defaultSearchWorkers,
		logger:           params.Logger,
	}

	if params.Config != nil && params.Config.Search != nil {
		cfg := params.Config.Search
		if cfg.MatchRadiusMiles > 0 {
			srv.matchRadiusMiles = cfg.MatchRadiusMiles
		}
		if cfg.MaxRadiusMiles > 0 {
			srv.maxRadiusMiles = cfg.MaxRadiusMiles
		}
		if cfg.Workers > 0 {
			srv.workers = cfg.Workers
		}
	}

	return srv
}

func (s *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Search returns the properties free for the whole range, in catalog order.
// With a point, only geocoded properties within the radius qualify.
func (s *availabilityService) Search(ctx context.Context, input *usecase.SearchInput) ([]*usecase.AvailableProperty, error) {
	requested, err := calendar.NewRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	radius := s.radius(input.RadiusMiles)
	if input.Point != nil {
		if err := input.Point.Validate(); err != nil {
			return nil, err
		}
	}

	candidates, err := s.candidates(ctx, input.Point, radius)
	if err != nil {
		return nil, err
	}

	matches := s.filterByDistance(candidates, input.Point, radius)

	free, err := s.checkAvailability(ctx, matches, requested)
	if err != nil {
		return nil, err
	}

	results := make([]*usecase.AvailableProperty, 0, len(matches))
	for i, m := range matches {
		if !free[i] {
			continue
		}
		results = append(results, &usecase.AvailableProperty{
			Property:      m.property,
			IsAvailable:   true,
			DistanceMiles: m.distance,
		})
	}

	s.log(ctx).Debug("Availability search finished",
		slog.String("range", requested.String()),
		slog.Bool("with_point", input.Point != nil),
		slog.Float64("radius_miles", radius),
		slog.Int("candidates", len(candidates)),
		slog.Int("available", len(results)),
	)

	return results, nil
}

// radius applies the configured default and cap.
func (s *availabilityService) radius(requested float64) float64 {
	radius := s.matchRadiusMiles
	if requested > 0 {
		radius = requested
	}
	if s.maxRadiusMiles > 0 && radius > s.maxRadiusMiles {
		radius = s.maxRadiusMiles
	}

	return radius
}

// candidates loads the catalog, narrowed to a padded bounding box when one exists.
func (s *availabilityService) candidates(ctx context.Context, point *geo.Coordinate, radius float64) ([]*entity.Property, error) {
	if point != nil {
		if bound, ok := geo.SearchBound(*point, radius); ok {
			properties, err := s.propertyRepo.FindWithinBound(ctx, bound)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load nearby properties")
			}

			return properties, nil
		}
	}

	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load properties")
	}

	return properties, nil
}

type candidateMatch struct {
	property *entity.Property
	distance *float64
}

func (s *availabilityService) filterByDistance(properties []*entity.Property, point *geo.Coordinate, radius float64) []candidateMatch {
	matches := make([]candidateMatch, 0, len(properties))
	for _, p := range properties {
		if point == nil {
			matches = append(matches, candidateMatch{property: p})

			continue
		}

		if !p.HasCoordinate() {
			continue
		}

		distance := point.DistanceTo(*p.Coordinate)
		if distance > radius {
			continue
		}
		matches = append(matches, candidateMatch{property: p, distance: &distance})
	}

	return matches
}

type availabilityResult struct {
	index int
	free  bool
	err   error
}

// checkAvailability asks the ledger for each property's calendar on a bounded worker pool.
// free[i] corresponds to matches[i].
func (s *availabilityService) checkAvailability(ctx context.Context, matches []candidateMatch, requested calendar.Range) ([]bool, error) {
	free := make([]bool, len(matches))
	if len(matches) == 0 {
		return free, nil
	}

	indexCh := make(chan int, len(matches))
	resultCh := make(chan availabilityResult, len(matches))

	workerGroup := s.spawnAvailabilityWorkers(ctx, s.workerCount(len(matches)), indexCh, resultCh, matches, requested)
	go dispatchAvailabilityWork(ctx, indexCh, len(matches))

	errs := make([]error, len(matches))
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()
	for res := range resultCh {
		free[res.index] = res.free
		errs[res.index] = res.err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return free, nil
}

func (s *availabilityService) workerCount(targetCount int) int {
	if targetCount < s.workers {
		return targetCount
	}

	return s.workers
}

func (s *availabilityService) spawnAvailabilityWorkers(
	ctx context.Context,
	workerCount int,
	indexCh <-chan int,
	resultCh chan<- availabilityResult,
	matches []candidateMatch,
	requested calendar.Range,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range indexCh {
				if ctx.Err() != nil {
					return
				}

				free, err := s.isFree(ctx, matches[idx].property, requested)
				resultCh <- availabilityResult{index: idx, free: free, err: err}
			}
		}()
	}

	return &workerGroup
}

func dispatchAvailabilityWork(ctx context.Context, indexCh chan<- int, count int) {
	defer close(indexCh)

	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return
		}

		indexCh <- i
	}
}

func (s *availabilityService) isFree(ctx context.Context, property *entity.Property, requested calendar.Range) (bool, error) {
	bookings, err := s.ledger.ListActive(ctx, property.ID)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check availability of property %s", property.ID)
	}

	for _, b := range bookings {
		if b.Overlaps(requested) {
			return false, nil
		}
	}

	return true, nil
}
