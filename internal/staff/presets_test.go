package staff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/venue-sim/internal/common"
)

func TestPresets_BuildMatchesTable(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Family, func(t *testing.T) {
			task := p.Build("guest-1")

			assert.Equal(t, p.Family, task.Type())
			assert.Equal(t, p.Name, task.Name())
			assert.Equal(t, p.Location, task.Location())
			assert.Equal(t, p.Duration, task.Duration())
			assert.Equal(t, StatusPending, task.Status())

			for _, r := range p.Required {
				got, ok := task.RequiredValue(r.Attribute)
				require.True(t, ok, r.Attribute)
				assert.InDelta(t, r.Min, got, 1e-9)
			}
			for _, w := range p.Relevant {
				assert.InDelta(t, w.Weight, task.AttributeWeight(w.Attribute), 1e-9, w.Attribute)
			}

			if p.Targeted {
				assert.Equal(t, "guest-1", task.Target())
			} else {
				assert.Empty(t, task.Target())
			}
		})
	}
}

func TestPresets_RequiredAttributesAreRelevant(t *testing.T) {
	for _, p := range Presets() {
		task := p.Build("")
		relevant := task.RelevantAttributes()
		for _, r := range p.Required {
			assert.Contains(t, relevant, r.Attribute, p.Family)
		}
	}
}

func TestPresets_FamilyConstructors(t *testing.T) {
	tests := []struct {
		task         *Task
		name         string
		wantType     string
		wantDuration time.Duration
	}{
		{name: "customer", task: NewCustomerInteraction("c1"), wantType: FamilyCustomerInteraction, wantDuration: 30 * time.Minute},
		{name: "patrol", task: NewSecurityPatrol(), wantType: FamilySecurityPatrol, wantDuration: Continuous},
		{name: "drinks", task: NewDrinkService("c2"), wantType: FamilyDrinkService, wantDuration: 10 * time.Minute},
		{name: "music", task: NewMusicPerformance(), wantType: FamilyMusicPerformance, wantDuration: 45 * time.Minute},
		{name: "food", task: NewFoodPreparation(), wantType: FamilyFoodPreparation, wantDuration: 20 * time.Minute},
		{name: "gambling", task: NewIllegalActivity(IllegalGambling, ""), wantType: FamilyGambling, wantDuration: 60 * time.Minute},
		{name: "blackmail", task: NewIllegalActivity(IllegalBlackmail, "mayor"), wantType: FamilyBlackmail, wantDuration: 40 * time.Minute},
		{name: "substance", task: NewIllegalActivity(IllegalSubstanceSale, "c3"), wantType: FamilySubstanceSale, wantDuration: 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.task.Type())
			assert.Equal(t, tt.wantDuration, tt.task.Duration())
			assert.NotEmpty(t, tt.task.RelevantAttributes())
		})
	}

	assert.False(t, NewSecurityPatrol().HasDeadline())
	assert.Equal(t, "mayor", NewIllegalActivity(IllegalBlackmail, "mayor").Target())
}

func TestNewIllegalActivity_UnknownKind(t *testing.T) {
	task := NewIllegalActivity("smuggling", "dock")

	assert.Equal(t, FamilyIllegal, task.Type())
	assert.Equal(t, DefaultDuration, task.Duration())
	assert.Equal(t, "dock", task.Target())
	assert.Empty(t, task.RelevantAttributes())
}

func TestFromFamily(t *testing.T) {
	task, err := FromFamily(FamilyFoodPreparation, "")
	require.NoError(t, err)
	assert.Equal(t, "kitchen", task.Location())

	_, err = FromFamily("juggling", "")
	assert.ErrorIs(t, err, common.ErrUnknownTaskFamily)
}

func TestPresets_ReturnsCopies(t *testing.T) {
	first := Presets()
	first[0].Required[0].Min = 99
	first[0].Name = "changed"

	p, ok := Lookup(first[0].Family)
	require.True(t, ok)
	assert.NotEqual(t, "changed", p.Name)
	assert.NotEqual(t, 99.0, p.Required[0].Min)
	assert.Len(t, Families(), len(Presets()))
}
