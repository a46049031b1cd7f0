package domain

import (
	"context"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
)

// ReaderPort is the external port for producing readings
type ReaderPort interface {
	// FromBirth computes the chart through the ephemeris, then everything derived from it
	FromBirth(ctx context.Context, in BirthInput) (*Reading, error)

	// FromChart skips the ephemeris and derives from a chart computed upstream
	FromChart(ctx context.Context, c chart.Chart, birth time.Time) (*Reading, error)
}

// Ports exposed by the reading module
type Ports struct {
	Reader ReaderPort
}
