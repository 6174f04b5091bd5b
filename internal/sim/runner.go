package sim

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/venue-sim/internal/config"
	"github.com/Veraticus/venue-sim/internal/model"
)

// Result is what a finished venue sends back to the runner.
type Result struct {
	Reports []*model.DailyReport
	Venue   string
	Balance float64
	index   int
}

// Setup is called with each venue inside its goroutine before it runs,
// typically to register ledger observers.
type Setup func(*Venue)

// RunMany simulates each configuration as an independent venue in its own
// goroutine. Venues share nothing; only their results cross back over a
// channel. Results keep the order of cfgs.
func RunMany(ctx context.Context, cfgs []*config.Config, days int, logger *slog.Logger, setup Setup) ([]Result, error) {
	results := make(chan Result, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)

	for i, cfg := range cfgs {
		g.Go(func() error {
			v, err := NewVenue(cfg, logger)
			if err != nil {
				return fmt.Errorf("venue %q: %w", cfg.Venue.Name, err)
			}
			if setup != nil {
				setup(v)
			}

			reports, err := v.Run(ctx, days)
			if err != nil {
				return fmt.Errorf("venue %q: %w", cfg.Venue.Name, err)
			}

			results <- Result{
				index:   i,
				Venue:   v.Name(),
				Reports: reports,
				Balance: v.Ledger().Balance(),
			}
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(cfgs))
	for r := range results {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Result) int { return a.index - b.index })
	return out, nil
}
