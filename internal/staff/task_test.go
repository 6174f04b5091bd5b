package staff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	task := New("Sweep", "cleaning")

	assert.Equal(t, "Sweep", task.Name())
	assert.Equal(t, "cleaning", task.Type())
	assert.Equal(t, DefaultDuration, task.Duration())
	assert.Equal(t, StatusPending, task.Status())
	assert.Zero(t, task.Progress())
	assert.NotEmpty(t, task.ID())
	assert.Empty(t, task.RelevantAttributes())
	assert.Empty(t, task.Results())
	assert.True(t, task.HasDeadline())
	assert.False(t, task.IsTerminal())
}

func TestTask_FiniteProgress(t *testing.T) {
	task := New("Pour", "drink_service", WithDuration(40*time.Minute))
	task.Start(t0)

	assert.Equal(t, StatusInProgress, task.Status())
	assert.Equal(t, t0, task.StartTime())
	assert.Equal(t, t0.Add(40*time.Minute), task.EndTime())

	task.Advance(t0)
	assert.Zero(t, task.Progress())

	task.Advance(t0.Add(-5 * time.Minute))
	assert.Zero(t, task.Progress(), "progress clamps at zero before the start")

	task.Advance(t0.Add(20 * time.Minute))
	assert.InDelta(t, 0.5, task.Progress(), 1e-9)
	assert.Equal(t, StatusInProgress, task.Status())
	assert.Equal(t, 20*time.Minute, task.Remaining(t0.Add(20*time.Minute)))

	task.Advance(t0.Add(90 * time.Minute))
	assert.InDelta(t, 1, task.Progress(), 1e-9)
	assert.Equal(t, StatusCompleted, task.Status())
	assert.True(t, task.IsTerminal())
	assert.Zero(t, task.Remaining(t0.Add(90*time.Minute)))
}

func TestTask_CustomerInteractionScenario(t *testing.T) {
	task := NewCustomerInteraction("guest-42")
	require.Equal(t, 30*time.Minute, task.Duration())

	task.Start(t0)
	task.Advance(t0.Add(15 * time.Minute))
	assert.InDelta(t, 0.5, task.Progress(), 1e-9)
	assert.Equal(t, StatusInProgress, task.Status())

	task.Advance(t0.Add(30 * time.Minute))
	assert.InDelta(t, 1, task.Progress(), 1e-9)
	assert.Equal(t, StatusCompleted, task.Status())
}

func TestTask_ContinuousNeverAutoCompletes(t *testing.T) {
	task := New("Patrol", "security_patrol", WithDuration(Continuous))
	task.Start(t0)

	assert.False(t, task.HasDeadline())
	assert.True(t, task.EndTime().IsZero())

	for _, offset := range []time.Duration{0, time.Hour, 24 * time.Hour, 1000 * time.Hour} {
		task.Advance(t0.Add(offset))
		assert.Equal(t, StatusInProgress, task.Status())
		assert.InDelta(t, ContinuousProgress, task.Progress(), 1e-9)
	}
	assert.Zero(t, task.Remaining(t0.Add(time.Hour)))

	task.Complete()
	assert.Equal(t, StatusCompleted, task.Status())
}

func TestTask_ZeroDurationIsContinuous(t *testing.T) {
	task := New("Idle", "idle", WithDuration(0))
	task.Start(t0)
	task.Advance(t0.Add(time.Hour))

	assert.Equal(t, StatusInProgress, task.Status())
	assert.InDelta(t, ContinuousProgress, task.Progress(), 1e-9)
}

func TestTask_AdvanceIgnoredOutsideInProgress(t *testing.T) {
	pending := New("Wait", "idle", WithDuration(time.Minute))
	pending.Advance(t0.Add(time.Hour))
	assert.Equal(t, StatusPending, pending.Status())
	assert.Zero(t, pending.Progress())

	failed := New("Try", "idle", WithDuration(time.Minute))
	failed.Start(t0)
	failed.Fail("bored")
	failed.Advance(t0.Add(time.Hour))
	assert.Equal(t, StatusFailed, failed.Status())
	assert.Zero(t, failed.Progress())
}

func TestTask_StartAgainResetsTimers(t *testing.T) {
	task := New("Redo", "idle", WithDuration(10*time.Minute))
	task.Start(t0)
	task.Advance(t0.Add(5 * time.Minute))

	later := t0.Add(time.Hour)
	task.Start(later)

	assert.Zero(t, task.Progress())
	assert.Equal(t, later, task.StartTime())
	assert.Equal(t, later.Add(10*time.Minute), task.EndTime())
}

func TestTask_CompleteFromAnyState(t *testing.T) {
	task := New("Resolve", "idle")
	task.Complete()

	assert.Equal(t, StatusCompleted, task.Status())
	assert.InDelta(t, 1, task.Progress(), 1e-9)
}

func TestTask_FailRetainsReason(t *testing.T) {
	task := New("Raid", "illegal_activity")
	task.Start(t0)
	task.Fail("caught by police")

	assert.Equal(t, StatusFailed, task.Status())
	assert.Equal(t, "caught by police", task.FailureReason())
	assert.True(t, task.IsTerminal())
}

func TestTask_Attributes(t *testing.T) {
	task := New("Mix", "drink_service")

	task.AddRequiredAttribute(AttrDexterity, 3)
	task.AddRelevantAttribute(AttrCharisma, 2.5)
	task.AddRequiredAttribute(AttrCharisma, 4)
	task.AddRequiredAttribute(AttrDexterity, 5)
	task.AddRelevantAttribute(AttrPerception, 0.5)
	task.AddRelevantAttribute(AttrPerception, 0.75)

	assert.Equal(t, []string{AttrDexterity, AttrCharisma, AttrPerception}, task.RelevantAttributes())
	assert.InDelta(t, DefaultWeight, task.AttributeWeight(AttrDexterity), 1e-9)
	assert.InDelta(t, 2.5, task.AttributeWeight(AttrCharisma), 1e-9, "requirement leaves an existing weight untouched")
	assert.InDelta(t, 0.75, task.AttributeWeight(AttrPerception), 1e-9)
	assert.Zero(t, task.AttributeWeight(AttrStealth))

	minDex, ok := task.RequiredValue(AttrDexterity)
	assert.True(t, ok)
	assert.InDelta(t, 5, minDex, 1e-9)
	_, ok = task.RequiredValue(AttrPerception)
	assert.False(t, ok)

	assert.Equal(t, map[string]float64{AttrDexterity: 5, AttrCharisma: 4}, task.Requirements())
}

func TestTask_AccessorsReturnCopies(t *testing.T) {
	task := New("Mix", "drink_service")
	task.AddRequiredAttribute(AttrDexterity, 3)
	task.SetResult("tips", 12.5)

	task.Requirements()[AttrDexterity] = 0
	task.RelevantAttributes()[0] = "mutated"
	task.Results()["tips"] = 0

	v, _ := task.RequiredValue(AttrDexterity)
	assert.InDelta(t, 3, v, 1e-9)
	assert.Equal(t, []string{AttrDexterity}, task.RelevantAttributes())
	tips, ok := task.Result("tips")
	require.True(t, ok)
	assert.InDelta(t, 12.5, tips, 1e-9)
}

func TestTask_SetResultOverwrites(t *testing.T) {
	task := New("Chat", "customer_interaction")
	task.SetResult("satisfaction", 2)
	task.SetResult("satisfaction", -1)
	task.SetResult("tips", 5.0)

	assert.Equal(t, map[string]any{"satisfaction": -1, "tips": 5.0}, task.Results())
	_, ok := task.Result("missing")
	assert.False(t, ok)
}
