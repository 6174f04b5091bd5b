package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/venue-sim/internal/cli"
	"github.com/Veraticus/venue-sim/internal/common"
	"github.com/Veraticus/venue-sim/internal/config"
	"github.com/Veraticus/venue-sim/internal/model"
	"github.com/Veraticus/venue-sim/internal/sim"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the venue for a number of business days",
		Long: `Run one or more independent venues through consecutive business days
and print each closing report.

Every venue runs in its own goroutine with its own ledger and clock.`,
		RunE: runSimulate,
	}

	cmd.Flags().IntP("days", "d", 7, "Number of business days to simulate")
	cmd.Flags().Int("venues", 1, "Number of independent venues to run side by side")
	cmd.Flags().String("format", "table", "Output format (table, json)")

	_ = viper.BindPFlag("simulate.days", cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag("simulate.venues", cmd.Flags().Lookup("venues"))
	_ = viper.BindPFlag("simulate.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	days := viper.GetInt("simulate.days")
	venues := viper.GetInt("simulate.venues")
	format := viper.GetString("simulate.format")

	if days <= 0 {
		return common.NewUserError("--days must be positive", common.ErrInvalidConfig)
	}
	if venues <= 0 {
		return common.NewUserError("--venues must be positive", common.ErrInvalidConfig)
	}
	if format != "table" && format != "json" {
		return common.NewUserError(fmt.Sprintf("unsupported output format %q", format), common.ErrInvalidConfig)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfgs := venueConfigs(cfg, venues)
	total := days * len(cfgs)

	var closed atomic.Int64
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(cmd.Context(), func() string {
		return fmt.Sprintf("%d of %d venue-days closed", closed.Load(), total)
	})
	defer stop()

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Simulating"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)

	results, err := sim.RunMany(ctx, cfgs, days, slog.Default(), func(v *sim.Venue) {
		v.Ledger().OnReportReady(func() {
			closed.Add(1)
			_ = bar.Add(1)
		})
	})
	_ = bar.Finish()
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return common.NewUserError("simulation failed", err)
	}

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	return writeTables(cmd.OutOrStdout(), results, cfg.Venue.Currency)
}

// venueConfigs clones cfg once per venue. Each clone owns its staff slice
// and attribute maps so no state is shared between goroutines.
func venueConfigs(cfg *config.Config, venues int) []*config.Config {
	out := make([]*config.Config, 0, venues)
	for i := range venues {
		c := *cfg
		c.Staff = make([]config.StaffConfig, len(cfg.Staff))
		for j, member := range cfg.Staff {
			member.Rota = slices.Clone(member.Rota)
			member.Attributes = maps.Clone(member.Attributes)
			c.Staff[j] = member
		}
		if venues > 1 {
			c.Venue.Name = fmt.Sprintf("%s #%d", cfg.Venue.Name, i+1)
		}
		out = append(out, &c)
	}
	return out
}

type venueOutput struct {
	Venue   string                 `json:"venue"`
	Reports []model.ReportSnapshot `json:"reports"`
	Balance float64                `json:"balance"`
}

func writeJSON(w io.Writer, results []sim.Result) error {
	out := make([]venueOutput, 0, len(results))
	for _, r := range results {
		snapshots := make([]model.ReportSnapshot, 0, len(r.Reports))
		for _, report := range r.Reports {
			snapshots = append(snapshots, report.Snapshot())
		}
		out = append(out, venueOutput{Venue: r.Venue, Balance: r.Balance, Reports: snapshots})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// writeTables prints every report. The balance after each day is the running
// sum of profits because opening capital is booked inside day one.
func writeTables(w io.Writer, results []sim.Result, currency string) error {
	var errs []error
	for _, r := range results {
		var balance float64
		for _, report := range r.Reports {
			balance += report.Profit
			_, err := fmt.Fprintln(w, cli.RenderReport(r.Venue, report, balance, currency))
			errs = append(errs, err)
		}
		summary := fmt.Sprintf("%s closed %d days with %s", r.Venue, len(r.Reports), cli.FormatMoney(r.Balance, currency))
		_, err := fmt.Fprintln(w, cli.FormatSuccess(summary))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
