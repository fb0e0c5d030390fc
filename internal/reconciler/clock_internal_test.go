package reconciler

import (
	"testing"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/stretchr/testify/assert"
)

func TestUnitSystemClockNow(t *testing.T) {
	now := systemClock{}.Now()

	assert.InDelta(
		t,
		time.Now().UTC().UnixMilli(),
		now.UnixMilli(),
		float64(50*time.Millisecond),
		"should return current time",
	)
	assert.Equal(t, time.UTC, now.Location())
}

func TestUnitOrderLegs(t *testing.T) {
	tests := map[string]struct {
		legs []models.Leg
		want []models.Leg
	}{
		"both by default": {
			want: []models.Leg{models.LegInternal, models.LegMarketplace},
		},
		"internal first": {
			legs: []models.Leg{models.LegMarketplace, models.LegInternal},
			want: []models.Leg{models.LegInternal, models.LegMarketplace},
		},
		"duplicates": {
			legs: []models.Leg{models.LegMarketplace, models.LegMarketplace},
			want: []models.Leg{models.LegMarketplace},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderLegs(tt.legs))
		})
	}
}
