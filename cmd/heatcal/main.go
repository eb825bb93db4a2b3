// Package main provides the heatcal CLI entrypoint.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/dataset"
	"github.com/solvey/heatcal/grid"
	"github.com/solvey/heatcal/termrender"
	"github.com/solvey/heatcal/view"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatcal",
		Short: "Calendar-grid heatmaps in your terminal",
		Long: `heatcal turns a JSON file of per-date observations into a
calendar-grid heatmap, colored by perceptually-interpolated intensity.

Use 'heatcal render records.json' to draw a heatmap.
Use 'heatcal schemes' to list the built-in color schemes.`,
		Version: version,
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSchemesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderFlags mirrors the host configuration bag as CLI flags.
type renderFlags struct {
	start           string
	end             string
	weekStart       int
	vertical        bool
	light           bool
	schemeID        string
	zeroColor       string
	maxColor        string
	minValue        float64
	maxValue        float64
	noMonthLabels   bool
	noWeekdayLabels bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <records.json>",
		Short: "Render a heatmap from a JSON records file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(args[0])
			if err != nil {
				exitOnError(err)
			}

			cfg, err := f.toConfig(cmd)
			if err != nil {
				exitOnError(err)
			}

			today := caldate.FromTime(time.Now())
			v, err := view.Build(records, cfg, today, !f.light)
			if err != nil {
				exitOnError(err)
			}

			reportDataQuality(v)
			if v.State != dataset.StateOK {
				warnf("%s: rendering an empty grid", v.State)
			}

			fmt.Fprint(cmd.OutOrStdout(), termrender.Render(v, termrender.DefaultOptions()))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "range start (YYYY-MM-DD; defaults to the earliest record)")
	cmd.Flags().StringVar(&f.end, "end", "", "range end (YYYY-MM-DD; defaults to today)")
	cmd.Flags().IntVar(&f.weekStart, "week-start", 0, "first day of the week: 0=Sunday, 1=Monday")
	cmd.Flags().BoolVar(&f.vertical, "vertical", false, "lay weeks out as rows instead of columns")
	cmd.Flags().BoolVar(&f.light, "light", false, "render for a light background")
	cmd.Flags().StringVar(&f.schemeID, "scheme", "github", "built-in color scheme id")
	cmd.Flags().StringVar(&f.zeroColor, "zero-color", "", "override the scheme's zero color (hex)")
	cmd.Flags().StringVar(&f.maxColor, "max-color", "", "override the scheme's max color (hex)")
	cmd.Flags().Float64Var(&f.minValue, "min", 0, "override the computed minimum value")
	cmd.Flags().Float64Var(&f.maxValue, "max", 0, "override the computed maximum value")
	cmd.Flags().BoolVar(&f.noMonthLabels, "no-month-labels", false, "hide month labels")
	cmd.Flags().BoolVar(&f.noWeekdayLabels, "no-weekday-labels", false, "hide weekday labels")

	return cmd
}

// toConfig resolves flags into a view.Config, validating user-supplied
// colors at this boundary so malformed hex never reaches the core.
func (f *renderFlags) toConfig(cmd *cobra.Command) (view.Config, error) {
	cfg := view.DefaultConfig()
	cfg.StartText = f.start
	cfg.EndText = f.end
	cfg.ShowMonthLabels = !f.noMonthLabels
	cfg.ShowWeekdayLabels = !f.noWeekdayLabels

	if f.weekStart == 1 {
		cfg.WeekStart = caldate.WeekStartMonday
	}
	if f.vertical {
		cfg.Orientation = grid.Vertical
	}

	zero, max, err := resolveScheme(f.schemeID, f.zeroColor, f.maxColor)
	if err != nil {
		return view.Config{}, err
	}
	cfg.ZeroColor, cfg.MaxColor = zero, max

	if cmd.Flags().Changed("min") {
		v := f.minValue
		cfg.MinValue = &v
	}
	if cmd.Flags().Changed("max") {
		v := f.maxValue
		cfg.MaxValue = &v
	}

	return cfg, nil
}

// reportDataQuality surfaces fold bookkeeping the grid itself cannot show.
func reportDataQuality(v *view.View) {
	if n := v.Dataset.Dropped; n > 0 {
		warnf("%d record(s) without a resolvable date were skipped", n)
	}
	if n := v.Dataset.Unsupported; n > 0 && v.State == dataset.StateOK {
		warnf("%d record(s) carried an unsupported value type", n)
	}
}

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the built-in color schemes",
		Run: func(cmd *cobra.Command, args []string) {
			ids := make([]string, 0, len(builtinSchemes))
			for id := range builtinSchemes {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				s := builtinSchemes[id]
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s zero=%s max=%s\n", id, s.zero, s.max)
			}
		},
	}
}
