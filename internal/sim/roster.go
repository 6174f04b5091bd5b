package sim

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/Veraticus/venue-sim/internal/config"
	"github.com/Veraticus/venue-sim/internal/scoring"
	"github.com/Veraticus/venue-sim/internal/staff"
)

// Member is one employee working through a rota of task families.
type Member struct {
	Attributes scoring.Attributes
	current    *staff.Task
	ID         string
	Name       string
	Rota       []string
	Wage       float64
	next       int
	misses     int
	benched    bool
	Completed  int
	Failed     int
}

func newMember(cfg config.StaffConfig) *Member {
	return &Member{
		ID:         uuid.NewString(),
		Name:       cfg.Name,
		Wage:       cfg.Wage,
		Rota:       slices.Clone(cfg.Rota),
		Attributes: scoring.Attributes(maps.Clone(cfg.Attributes)),
	}
}

// Current returns the task the member is working on, or nil when idle.
func (m *Member) Current() *staff.Task {
	return m.current
}

// Benched reports whether the member gave up for the rest of the day after
// failing every family in their rota.
func (m *Member) Benched() bool {
	return m.benched
}

func (m *Member) nextFamily() string {
	family := m.Rota[m.next%len(m.Rota)]
	m.next++
	return family
}

func (m *Member) resetDay() {
	m.current = nil
	m.misses = 0
	m.benched = false
}
