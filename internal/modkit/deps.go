// Package modkit provides module wiring and core deps
package modkit

import (
	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/platform/config"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger // nil falls back to logger.Named(module name)
	Cfg config.Conf
	Eph chart.Ephemeris // nil when callers only bring precomputed charts
}
