// Package module implements the reading module
package module

import (
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/modkit"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
	"github.com/ajitrahul/chetna-sub000/internal/services/reading/domain"
	"github.com/ajitrahul/chetna-sub000/internal/services/reading/service"
)

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports domain.Ports
}

var _ modkit.Module = (*Module)(nil)

// New constructs a new reading module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reading"),
	}, opts...)...)

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if len(overrides.Vargas) != 0 {
		cfg.Vargas = overrides.Vargas
	}
	if overrides.DashaDepth != 0 {
		cfg.DashaDepth = overrides.DashaDepth
	}
	if overrides.HouseMethod != 0 {
		cfg.HouseMethod = overrides.HouseMethod
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if !overrides.Now.IsZero() {
		cfg.Now = overrides.Now
	}

	var now func() time.Time
	if !cfg.Now.IsZero() {
		at := cfg.Now
		now = func() time.Time { return at }
	}

	log := logger.Named(b.Name)
	if deps.Log != nil {
		l := deps.Log.With().Str("component", b.Name).Logger()
		log = &l
	}
	svc, err := service.New(deps.Eph, service.Config{
		Vargas:      cfg.Vargas,
		DashaDepth:  cfg.DashaDepth,
		HouseMethod: cfg.HouseMethod,
		Workers:     cfg.Workers,
		Now:         now,
	}, log)
	if err != nil {
		panic(err)
	}

	m := &Module{deps: deps}
	m.ports = domain.Ports{Reader: svc}
	return m
}

// Builder adapts New to modkit.Builder with fixed overrides
func Builder(overrides Options) modkit.Builder {
	return func(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
		return New(deps, overrides, opts...)
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reading" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Reader is a typed shortcut for Ports().(domain.Ports).Reader
func (m *Module) Reader() domain.ReaderPort { return m.ports.Reader }
