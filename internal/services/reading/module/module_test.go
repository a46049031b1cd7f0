package module

import (
	"context"
	"testing"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/chart/charttest"
	"github.com/ajitrahul/chetna-sub000/internal/modkit"
	"github.com/ajitrahul/chetna-sub000/internal/platform/config"
	"github.com/ajitrahul/chetna-sub000/internal/services/reading/domain"
	kit "github.com/ajitrahul/chetna-sub000/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig_Defaults(t *testing.T) {
	opt := FromConfig(config.New().Prefix("CHETNA_"))
	assert.Empty(t, opt.Vargas)
	assert.Equal(t, 5, opt.DashaDepth)
	assert.Equal(t, chart.Placidus, opt.HouseMethod)
	assert.Equal(t, 4, opt.Workers)
	assert.True(t, opt.Now.IsZero())
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("CHETNA_READING_VARGAS", "D9, navamsa ,d-10,D5,bogus,60")
	t.Setenv("CHETNA_READING_DASHA_DEPTH", "3")
	t.Setenv("CHETNA_READING_HOUSE_METHOD", "w")
	t.Setenv("CHETNA_READING_WORKERS", "8")
	t.Setenv("CHETNA_READING_NOW", "2024-01-02T03:04:05Z")

	opt := FromConfig(config.New().Prefix("CHETNA_"))
	// unsupported and unknown entries are skipped, duplicates kept for the service to dedupe
	assert.Equal(t, []int{9, 9, 10, 60}, opt.Vargas)
	assert.Equal(t, 3, opt.DashaDepth)
	assert.Equal(t, chart.WholeSign, opt.HouseMethod)
	assert.Equal(t, 8, opt.Workers)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), opt.Now)
}

func TestFromConfig_OutOfRangeFallsBack(t *testing.T) {
	t.Setenv("CHETNA_READING_DASHA_DEPTH", "7")
	t.Setenv("CHETNA_READING_WORKERS", "0")
	opt := FromConfig(config.New().Prefix("CHETNA_"))
	assert.Equal(t, 5, opt.DashaDepth)
	assert.Equal(t, 4, opt.Workers)
}

func TestFromConfig_BadHouseMethodPanics(t *testing.T) {
	t.Setenv("CHETNA_READING_HOUSE_METHOD", "X")
	kit.MustPanic(t, func() { FromConfig(config.New().Prefix("CHETNA_")) })
}

func TestNew_WiresReader(t *testing.T) {
	at := time.Date(1991, 4, 15, 0, 0, 0, 0, time.UTC)
	m := New(
		modkit.Deps{Cfg: config.New().Prefix("CHETNA_"), Eph: charttest.Sample()},
		Options{Vargas: []int{9}, DashaDepth: 2, Workers: 2, Now: at},
	)
	assert.Equal(t, "reading", m.Name())

	ports, ok := m.Ports().(domain.Ports)
	require.True(t, ok)
	require.NotNil(t, ports.Reader)
	assert.Same(t, ports.Reader, m.Reader())

	r, err := m.Reader().FromBirth(context.Background(), domain.BirthInput{
		Moment: chart.Moment{Year: 1990, Month: 4, Day: 15, Hour: 6.5},
		Geo:    chart.GeoCoordinate{Latitude: 28.61, Longitude: 77.21},
	})
	require.NoError(t, err)
	assert.Len(t, r.Vargas, 1)
	assert.Equal(t, at, r.EvaluatedAt)
	assert.Len(t, r.Dasha.Current(), 2)
}

func TestNew_PanicsOnBadOverrides(t *testing.T) {
	kit.MustPanic(t, func() {
		New(modkit.Deps{Cfg: config.New()}, Options{Vargas: []int{11}})
	})
}

func TestBuilder_BuildsReadingModule(t *testing.T) {
	var b modkit.Builder = Builder(Options{Vargas: []int{1}, DashaDepth: 1})
	m := b(modkit.Deps{Cfg: config.New().Prefix("CHETNA_")})
	assert.Equal(t, "reading", m.Name())

	ports, ok := m.Ports().(domain.Ports)
	require.True(t, ok)
	r, err := ports.Reader.FromChart(context.Background(), charttest.Chart(), time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, r.Vargas, 1)
	assert.Equal(t, 1, r.Dasha.Depth)
}
