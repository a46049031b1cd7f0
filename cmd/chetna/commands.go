package main

import (
	"strconv"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/dasha"
	"github.com/ajitrahul/chetna-sub000/internal/core/dignity"
	"github.com/ajitrahul/chetna-sub000/internal/core/varga"
	"github.com/ajitrahul/chetna-sub000/internal/core/version"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	"github.com/ajitrahul/chetna-sub000/internal/modkit"
	"github.com/ajitrahul/chetna-sub000/internal/platform/config"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
	readingdom "github.com/ajitrahul/chetna-sub000/internal/services/reading/domain"
	readingmod "github.com/ajitrahul/chetna-sub000/internal/services/reading/module"

	"github.com/spf13/cobra"
)

// cliDashaDepth keeps terminal output readable: five levels print 66k periods
const cliDashaDepth = 3

func dashaCmd(r renderer) *cobra.Command {
	var (
		moon      float64
		chartPath string
		birthStr  string
		atStr     string
		depth     int
		current   bool
	)
	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Vimsottari timeline from a Moon longitude or a chart file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var birth time.Time
			switch {
			case chartPath != "":
				c, b, err := loadChart(chartPath)
				if err != nil {
					return err
				}
				p, _ := c.Position(zodiac.Moon)
				moon, birth = p.Longitude, b
			case !cmd.Flags().Changed("moon"):
				return perr.WithField(perr.InvalidInputf("either --moon or --chart is required"), "moon")
			}
			if birthStr != "" {
				b, err := parseInstant(birthStr, "birth")
				if err != nil {
					return err
				}
				birth = b
			}
			if birth.IsZero() {
				return perr.WithField(perr.InvalidInputf("a birth instant is required"), "birth")
			}
			clock, err := clockFor(atStr)
			if err != nil {
				return err
			}

			eng, err := dasha.New(dasha.Options{Depth: depth, Clock: clock})
			if err != nil {
				return err
			}
			tl, err := eng.Timeline(moon, birth)
			if err != nil {
				return err
			}
			if current {
				return r.write(currentView(tl))
			}
			return r.write(tl)
		},
	}
	cmd.Flags().Float64Var(&moon, "moon", 0, "sidereal Moon longitude in degrees [0,360)")
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart file (YAML) to take the Moon and birth from")
	cmd.Flags().StringVar(&birthStr, "birth", "", "birth instant, RFC3339 or UTC 2006-01-02T15:04")
	cmd.Flags().StringVar(&atStr, "at", "", "evaluate current periods at this instant (default now)")
	cmd.Flags().IntVar(&depth, "depth", cliDashaDepth, "levels to expand, 1 (maha) to 5 (prana); 3 by default here, while the engine and CHETNA_READING_DASHA_DEPTH default to 5")
	cmd.Flags().BoolVar(&current, "current", false, "print only the current period chain")
	return cmd
}

type chainView struct {
	At    time.Time      `json:"at" yaml:"at"`
	Lords string         `json:"lords" yaml:"lords"`
	Chain []dasha.Period `json:"chain" yaml:"chain"`
}

func currentView(tl dasha.Timeline) chainView {
	chain := tl.Current()
	flat := make([]dasha.Period, len(chain))
	for i, p := range chain {
		p.Children = nil
		flat[i] = p
	}
	return chainView{At: tl.At, Lords: dasha.Lords(chain), Chain: flat}
}

func clockFor(at string) (func() time.Time, error) {
	if at == "" {
		return nil, nil
	}
	t, err := parseInstant(at, "at")
	if err != nil {
		return nil, err
	}
	return func() time.Time { return t }, nil
}

func parseHarmonics(in []string) ([]int, error) {
	out := make([]int, 0, len(in))
	for _, s := range in {
		n, err := varga.ParseHarmonic(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func vargaCmd(r renderer) *cobra.Command {
	var (
		chartPath string
		divisions []string
		list      bool
	)
	cmd := &cobra.Command{
		Use:   "varga",
		Short: "Divisional charts from a chart file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if list {
				names := make(map[string]string)
				for _, n := range varga.Supported() {
					names["D"+strconv.Itoa(n)] = varga.Name(n)
				}
				return r.write(names)
			}
			c, err := requireChart(chartPath)
			if err != nil {
				return err
			}
			ns, err := parseHarmonics(divisions)
			if err != nil {
				return err
			}
			if len(ns) == 1 {
				d, err := varga.Compute(c, ns[0])
				if err != nil {
					return err
				}
				return r.write(d)
			}
			all, err := varga.ComputeAll(c, ns...)
			if err != nil {
				return err
			}
			return r.write(all)
		},
	}
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart file (YAML)")
	cmd.Flags().StringSliceVarP(&divisions, "division", "d", []string{"D9"}, "divisional charts (D9, 10, navamsa ...)")
	cmd.Flags().BoolVar(&list, "list", false, "list supported divisional charts")
	return cmd
}

func dignityCmd(r renderer) *cobra.Command {
	var chartPath string
	cmd := &cobra.Command{
		Use:   "dignity",
		Short: "Per-planet dignity, role and load report",
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := requireChart(chartPath)
			if err != nil {
				return err
			}
			rs, err := dignity.Analyze(c)
			if err != nil {
				return err
			}
			return r.write(struct {
				Reports []dignity.Report `json:"reports" yaml:"reports"`
				Summary dignity.Summary  `json:"summary" yaml:"summary"`
			}{rs, dignity.Summarize(rs)})
		},
	}
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart file (YAML)")
	return cmd
}

func readingCmd(r renderer) *cobra.Command {
	var (
		chartPath string
		birthStr  string
		atStr     string
		divisions []string
		depth     int
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Full reading: vargas, dignity and dasha over one chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, birth, err := loadChartOrFail(chartPath)
			if err != nil {
				return err
			}
			if birthStr != "" {
				if birth, err = parseInstant(birthStr, "birth"); err != nil {
					return err
				}
			}
			if birth.IsZero() {
				return perr.WithField(perr.InvalidInputf("a birth instant is required"), "birth")
			}
			opts := readingmod.Options{DashaDepth: depth, Workers: workers}
			if opts.Vargas, err = parseHarmonics(divisions); err != nil {
				return err
			}
			if atStr != "" {
				if opts.Now, err = parseInstant(atStr, "at"); err != nil {
					return err
				}
			}

			m := readingmod.Builder(opts)(modkit.Deps{
				Log: logger.Named("cli"),
				Cfg: config.New().Prefix("CHETNA_"),
			})
			ports, ok := m.Ports().(readingdom.Ports)
			if !ok {
				return perr.Internalf("%s module: unexpected ports %T", m.Name(), m.Ports())
			}
			rd, err := ports.Reader.FromChart(cmd.Context(), c, birth)
			if err != nil {
				return err
			}
			return r.write(rd)
		},
	}
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart file (YAML)")
	cmd.Flags().StringVar(&birthStr, "birth", "", "birth instant (overrides the chart file)")
	cmd.Flags().StringVar(&atStr, "at", "", "evaluate current periods at this instant (default now)")
	cmd.Flags().StringSliceVarP(&divisions, "division", "d", nil, "divisional charts (default: every supported one)")
	cmd.Flags().IntVar(&depth, "depth", 0, "dasha depth 1..5 (default from CHETNA_READING_DASHA_DEPTH)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel derivations (default from CHETNA_READING_WORKERS)")
	return cmd
}

func versionCmd(r renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(_ *cobra.Command, _ []string) error {
			return r.write(version.Info())
		},
	}
}

func requireChart(path string) (chart.Chart, error) {
	c, _, err := loadChartOrFail(path)
	return c, err
}

func loadChartOrFail(path string) (chart.Chart, time.Time, error) {
	if path == "" {
		return chart.Chart{}, time.Time{}, perr.WithField(perr.InvalidInputf("--chart is required"), "chart")
	}
	return loadChart(path)
}
