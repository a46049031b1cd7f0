// Package service implements the reading service
package service

import (
	"context"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/dasha"
	"github.com/ajitrahul/chetna-sub000/internal/core/dignity"
	"github.com/ajitrahul/chetna-sub000/internal/core/varga"
	"github.com/ajitrahul/chetna-sub000/internal/core/version"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
	"github.com/ajitrahul/chetna-sub000/internal/services/reading/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config for the reading service
type Config struct {
	Vargas      []int
	DashaDepth  int
	HouseMethod chart.HouseMethod
	Workers     int
	Now         func() time.Time // evaluation instant for current dasha periods
}

// Service implements domain.ReaderPort
type Service struct {
	Calc  *chart.Calculator
	Dasha *dasha.Engine
	Cfg   Config
	log   *logger.Logger
}

var _ domain.ReaderPort = (*Service)(nil)

// New constructs a new reading service. eph may be nil when only FromChart is used
func New(eph chart.Ephemeris, cfg Config, log *logger.Logger) (*Service, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if len(cfg.Vargas) == 0 {
		cfg.Vargas = varga.Supported()
	}
	seen := make(map[int]bool, len(cfg.Vargas))
	vargas := make([]int, 0, len(cfg.Vargas))
	for _, n := range cfg.Vargas {
		if varga.Name(n) == "" {
			return nil, perr.WithOp(perr.UnsupportedHarmonicf("no table for D%d", n), "reading.new")
		}
		if !seen[n] {
			seen[n] = true
			vargas = append(vargas, n)
		}
	}
	cfg.Vargas = vargas
	eng, err := dasha.New(dasha.Options{Depth: cfg.DashaDepth, Clock: cfg.Now})
	if err != nil {
		return nil, perr.WithOp(err, "reading.new")
	}
	cfg.DashaDepth = eng.Depth()
	if log == nil {
		log = logger.Named("reading")
	}
	return &Service{
		Calc:  chart.NewCalculator(eph, chart.WithHouseMethod(cfg.HouseMethod)),
		Dasha: eng,
		Cfg:   cfg,
		log:   log,
	}, nil
}

// FromBirth computes the D1 chart and derives the reading from it
func (s *Service) FromBirth(ctx context.Context, in domain.BirthInput) (*Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := s.Calc.Compute(in.Moment, in.Geo)
	if err != nil {
		s.log.Warn().Err(err).Str("code", perr.CodeOf(err).String()).
			Bool("retryable", perr.Retryable(err)).Msg("chart failed")
		return nil, err
	}
	return s.FromChart(ctx, c, in.Moment.Time())
}

// Reading aliases the domain type for callers of the service package
type Reading = domain.Reading

// FromChart runs the vargas, the dignity analysis and the dasha timeline in parallel over
// the same immutable chart. Any failure discards the whole reading
func (s *Service) FromChart(ctx context.Context, c chart.Chart, birth time.Time) (*Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ctx = logger.WithReading(ctx, id, logger.Caller(ctx))
	lg := s.log.With().Str("reading_id", id).Str("caller", logger.Caller(ctx)).Logger()
	started := time.Now()
	lg.Debug().Ints("vargas", s.Cfg.Vargas).Int("depth", s.Cfg.DashaDepth).Msg("reading start")

	vargas := make([]varga.DivisionalChart, len(s.Cfg.Vargas))
	var reports []dignity.Report
	var timeline dasha.Timeline

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Cfg.Workers)

	for i, n := range s.Cfg.Vargas {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := varga.Compute(c, n)
			if err != nil {
				return err
			}
			vargas[i] = d
			return nil
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		rs, err := dignity.Analyze(c)
		reports = rs
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		tl, err := s.Dasha.FromChart(c, birth)
		timeline = tl
		return err
	})

	if err := g.Wait(); err != nil {
		lg.Warn().Err(err).Str("code", perr.CodeOf(err).String()).Msg("reading failed")
		return nil, err
	}

	out := &Reading{
		ID:          id,
		Birth:       birth,
		EvaluatedAt: timeline.At,
		Chart:       c,
		Vargas:      make(map[int]varga.DivisionalChart, len(vargas)),
		Dignity:     reports,
		Summary:     dignity.Summarize(reports),
		Dasha:       timeline,
		Engine:      version.Info(),
	}
	for _, d := range vargas {
		out.Vargas[d.Harmonic] = d
	}

	lg.Info().
		Dur("took", time.Since(started)).
		Str("lagna", c.AscendantSign().String()).
		Str("dasha", out.CurrentDasha()).
		Msg("reading complete")
	return out, nil
}
