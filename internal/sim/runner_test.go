package sim

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/venue-sim/internal/common"
	"github.com/Veraticus/venue-sim/internal/config"
)

func TestRunMany(t *testing.T) {
	first := testConfig(bartender())
	first.Venue.Name = "North"
	second := testConfig(bartender())
	second.Venue.Name = "South"
	second.Venue.Rent = 0

	var closed atomic.Int32
	results, err := RunMany(context.Background(), []*config.Config{first, second}, 2, quietLogger(), func(v *Venue) {
		v.Ledger().OnReportReady(func() { closed.Add(1) })
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "North", results[0].Venue)
	assert.Equal(t, "South", results[1].Venue)
	assert.Len(t, results[0].Reports, 2)
	assert.InDelta(t, 0, results[0].Balance, 1e-9)
	assert.InDelta(t, 100, results[1].Balance, 1e-9)
	assert.Equal(t, int32(4), closed.Load())
}

func TestRunMany_InvalidVenue(t *testing.T) {
	bad := testConfig(bartender())
	bad.Venue.Name = "Broken"
	bad.Staff[0].Rota = []string{"juggling"}

	_, err := RunMany(context.Background(), []*config.Config{testConfig(bartender()), bad}, 1, quietLogger(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Broken")
}
