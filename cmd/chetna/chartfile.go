package main

import (
	"bytes"
	"os"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// chartFile is the on-disk form of a precomputed D1 chart:
//
//	birth: 1990-04-15T06:30:00Z
//	ascendant: 125
//	midheaven: 35
//	positions:
//	  - {body: Sun, longitude: 15, speed: 0.98}
//	  - {body: Saturn, longitude: 200, speed: -0.03}
//
// Ketu may be omitted; cusps default to whole-sign houses from the ascendant
type chartFile struct {
	Birth     string               `yaml:"birth"`
	Ascendant float64              `yaml:"ascendant"`
	Midheaven float64              `yaml:"midheaven"`
	Cusps     []float64            `yaml:"cusps"`
	Positions []chart.BodyPosition `yaml:"positions"`
}

// loadChart reads and assembles a chart file. The birth instant is zero when the file has none
func loadChart(path string) (chart.Chart, time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return chart.Chart{}, time.Time{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidInput, "read chart file"), "chart")
	}
	return parseChart(raw)
}

func parseChart(raw []byte) (chart.Chart, time.Time, error) {
	var f chartFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return chart.Chart{}, time.Time{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeMalformedChart, "decode chart file"), "chart")
	}

	var cusps *[12]float64
	switch len(f.Cusps) {
	case 0:
	case 12:
		var cs [12]float64
		copy(cs[:], f.Cusps)
		cusps = &cs
	default:
		return chart.Chart{}, time.Time{}, perr.WithField(perr.MalformedChartf("chart file has %d cusps, want 12", len(f.Cusps)), "cusps")
	}

	c, err := chart.Assemble(f.Ascendant, f.Midheaven, cusps, f.Positions...)
	if err != nil {
		return chart.Chart{}, time.Time{}, err
	}

	var birth time.Time
	if f.Birth != "" {
		if birth, err = parseInstant(f.Birth, "birth"); err != nil {
			return chart.Chart{}, time.Time{}, err
		}
	}
	return c, birth, nil
}

var instantLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// parseInstant accepts RFC3339 or a bare UTC date/time
func parseInstant(s, field string) (time.Time, error) {
	for _, l := range instantLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, perr.WithField(perr.InvalidInputf("cannot parse instant %q", s), field)
}
