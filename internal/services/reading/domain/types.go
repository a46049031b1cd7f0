// Package domain defines the core types and interfaces for the reading service
package domain

import (
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/dasha"
	"github.com/ajitrahul/chetna-sub000/internal/core/dignity"
	"github.com/ajitrahul/chetna-sub000/internal/core/varga"
	"github.com/ajitrahul/chetna-sub000/internal/core/version"
)

// BirthInput is the raw birth data a reading starts from
type BirthInput struct {
	Moment chart.Moment        `json:"moment" yaml:"moment"`
	Geo    chart.GeoCoordinate `json:"geo" yaml:"geo"`
}

// Reading is the combined, internally consistent result for one birth
type Reading struct {
	ID          string                        `json:"id" yaml:"id"`
	Birth       time.Time                     `json:"birth" yaml:"birth"`
	EvaluatedAt time.Time                     `json:"evaluated_at" yaml:"evaluated_at"`
	Chart       chart.Chart                   `json:"chart" yaml:"chart"`
	Vargas      map[int]varga.DivisionalChart `json:"vargas" yaml:"vargas"`
	Dignity     []dignity.Report              `json:"dignity" yaml:"dignity"`
	Summary     dignity.Summary               `json:"summary" yaml:"summary"`
	Dasha       dasha.Timeline                `json:"dasha" yaml:"dasha"`
	Engine      version.BuildInfo             `json:"engine" yaml:"engine"`
}

// CurrentDasha returns the lords of the current period chain ("Jupiter/Saturn/...")
func (r *Reading) CurrentDasha() string { return dasha.Lords(r.Dasha.Current()) }
