// Package sim drives venues through simulated business days: it owns the game
// clock, hands tasks to staff, resolves finished work into transactions and
// closes each day on the ledger.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/venue-sim/internal/common"
	"github.com/Veraticus/venue-sim/internal/config"
	"github.com/Veraticus/venue-sim/internal/ledger"
	"github.com/Veraticus/venue-sim/internal/model"
	"github.com/Veraticus/venue-sim/internal/scoring"
	"github.com/Veraticus/venue-sim/internal/staff"
)

const (
	reasonRequirements = "requirements not met"
	reasonClosed       = "venue closed"
)

// Venue is a single simulation unit. It is not safe for concurrent use.
type Venue struct {
	clock   *SimClock
	ledger  *ledger.Ledger
	logger  *slog.Logger
	cfg     config.VenueConfig
	members []*Member
	day     int
	guests  int
}

// NewVenue builds a venue from cfg and books the starting balance as opening
// capital. A nil logger falls back to slog.Default.
func NewVenue(cfg *config.Config, logger *slog.Logger) (*Venue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("venue", cfg.Venue.Name)

	v := &Venue{
		cfg:    cfg.Venue,
		clock:  NewSimClock(cfg.Venue.Start),
		ledger: ledger.New(logger),
		logger: logger,
	}
	for _, sc := range cfg.Staff {
		v.members = append(v.members, newMember(sc))
	}

	if cfg.Venue.StartingBalance != 0 {
		v.ledger.AddIncome(cfg.Venue.Start, cfg.Venue.StartingBalance, model.CategoryInvestment, "opening capital")
	}
	return v, nil
}

// Name returns the configured venue name.
func (v *Venue) Name() string { return v.cfg.Name }

// Ledger returns the venue's ledger so callers can observe and query it.
func (v *Venue) Ledger() *ledger.Ledger { return v.ledger }

// Clock returns the venue's game clock.
func (v *Venue) Clock() Clock { return v.clock }

// Members returns the roster in configuration order.
func (v *Venue) Members() []*Member { return v.members }

// Day returns the index of the last closed day, 0 before the first.
func (v *Venue) Day() int { return v.day }

// Run simulates days consecutive business days.
func (v *Venue) Run(ctx context.Context, days int) ([]*model.DailyReport, error) {
	reports := make([]*model.DailyReport, 0, days)
	for range days {
		report, err := v.RunDay(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// RunDay simulates the next business day from opening to close and returns
// the ledger's report for it.
//
// A cancelled day is abandoned: unfinished tasks fail with "venue closed" and
// the day counter does not move, so the next call replays the same day.
// Transactions already booked stay in the ledger's open window and fold into
// the next closing report.
func (v *Venue) RunDay(ctx context.Context) (*model.DailyReport, error) {
	day := v.day + 1
	open := v.cfg.Start.Add(time.Duration(day-1) * 24 * time.Hour)
	closeAt := open.Add(v.cfg.OpenDuration())

	v.clock.Set(open)
	v.logger.Debug("venue opened", "day", day, "at", open)

	for _, m := range v.members {
		m.resetDay()
		v.assign(m, open)
	}

	for v.clock.Now().Before(closeAt) {
		if err := ctx.Err(); err != nil {
			v.abandon()
			return nil, fmt.Errorf("day %d interrupted: %w", day, err)
		}

		v.clock.Advance(v.cfg.Tick())
		now := v.clock.Now()
		if now.After(closeAt) {
			now = closeAt
			v.clock.Set(now)
		}
		for _, m := range v.members {
			v.tick(m, now, closeAt)
		}
	}

	report := v.closeUp(day, closeAt)
	v.day = day
	return report, nil
}

// tick advances m's task to now. No new work starts once closing time is
// reached.
func (v *Venue) tick(m *Member, now, closeAt time.Time) {
	open := now.Before(closeAt)
	if m.current == nil {
		if open {
			v.assign(m, now)
		}
		return
	}

	m.current.Advance(now)
	if m.current.Status() == staff.StatusCompleted {
		v.resolve(m, m.current, now)
		m.current = nil
		if open {
			v.assign(m, now)
		}
	}
}

func (v *Venue) abandon() {
	for _, m := range v.members {
		if m.current != nil {
			m.current.Fail(reasonClosed)
			m.Failed++
		}
		m.resetDay()
	}
}

func (v *Venue) assign(m *Member, now time.Time) {
	if m.benched || len(m.Rota) == 0 {
		return
	}

	task, err := staff.FromFamily(m.nextFamily(), v.nextGuest())
	if err != nil {
		// Rotas are validated up front; an unknown family only idles the member.
		v.logger.Warn("cannot build task", "staff", m.Name, "error", err)
		return
	}

	task.Start(now)
	if ok, unmet := scoring.Eligible(task, m.Attributes); !ok {
		task.Fail(fmt.Sprintf("%s: %s", reasonRequirements, strings.Join(unmet, ", ")))
		m.Failed++
		m.misses++
		if m.misses >= len(m.Rota) {
			m.benched = true
			common.LogInfo("staff benched for the day", common.Fields{
				"venue": v.cfg.Name,
				"staff": m.Name,
				"misses": m.misses,
			})
		}
		return
	}

	m.misses = 0
	m.current = task
	v.logger.Debug("task started",
		"staff", m.Name,
		"task", task.Type(),
		"target", task.Target(),
		"ends", task.EndTime())
}

func (v *Venue) resolve(m *Member, task *staff.Task, now time.Time) {
	m.Completed++
	score := scoring.Score(task, m.Attributes)
	task.SetResult("score", score)

	earning, ok := EarningFor(task.Type())
	if !ok {
		return
	}
	amount := earning.Amount(score)
	if amount <= 0 {
		return
	}

	task.SetResult("revenue", amount)
	v.ledger.AddIncome(now, amount, earning.Category, fmt.Sprintf("%s by %s", task.Name(), m.Name))

	if earning.Illegal && v.cfg.BribeRate > 0 {
		bribe := RoundWhole(amount * v.cfg.BribeRate)
		if bribe > 0 {
			task.SetResult("bribe", bribe)
			v.ledger.AddExpense(now, bribe, model.CategoryBribes, "keeping quiet about "+task.Name())
		}
	}
}

func (v *Venue) closeUp(day int, closeAt time.Time) *model.DailyReport {
	for _, m := range v.members {
		task := m.current
		if task == nil {
			continue
		}
		if task.HasDeadline() {
			task.Fail(reasonClosed)
			m.Failed++
		} else {
			task.Complete()
			v.resolve(m, task, closeAt)
		}
		m.current = nil
	}

	for _, m := range v.members {
		if m.Wage > 0 {
			v.ledger.AddExpense(closeAt, m.Wage, model.CategorySalaries, "wage: "+m.Name)
		}
	}
	if v.cfg.Rent > 0 {
		v.ledger.AddExpense(closeAt, v.cfg.Rent, model.CategoryRent, "daily rent")
	}

	return v.ledger.CloseDay(day)
}

func (v *Venue) nextGuest() string {
	v.guests++
	return fmt.Sprintf("guest-%d", v.guests)
}
