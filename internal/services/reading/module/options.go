package module

import (
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/dasha"
	"github.com/ajitrahul/chetna-sub000/internal/core/varga"
	"github.com/ajitrahul/chetna-sub000/internal/platform/config"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
)

// Options holds configuration settings for the reading module
type Options struct {
	Vargas      []int
	DashaDepth  int
	HouseMethod chart.HouseMethod
	Workers     int
	Now         time.Time // zero means the wall clock
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("READING_")

	var vargas []int
	for _, s := range rc.MayCSV("VARGAS", nil) {
		n, err := varga.ParseHarmonic(s)
		if err != nil {
			logger.Get().Warn().Err(err).Str("value", s).Msg("skipping unknown varga")
			continue
		}
		vargas = append(vargas, n)
	}

	hm, _ := chart.ParseHouseMethod(rc.MayEnum("HOUSE_METHOD", "P", chart.HouseMethods()...))

	return Options{
		Vargas:      vargas,
		DashaDepth:  rc.MayIntIn("DASHA_DEPTH", dasha.MaxDepth, 1, dasha.MaxDepth),
		HouseMethod: hm,
		Workers:     rc.MayIntIn("WORKERS", 4, 1, 64),
		Now:         rc.MayTime("NOW"),
	}
}
