package handler

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agroferia/agroferia-backend/internal/model"
)

func TestUrgencyRank(t *testing.T) {
	assert.Equal(t, 0, UrgencyRank(model.UrgencyCritical))
	assert.Equal(t, 1, UrgencyRank(model.UrgencyHigh))
	assert.Equal(t, 2, UrgencyRank(model.UrgencyMedium))
	assert.Equal(t, 3, UrgencyRank(model.UrgencyLow))
	assert.Equal(t, 4, UrgencyRank("whatever"))
}

func TestUrgencyRankOrdersMostPressingFirst(t *testing.T) {
	levels := []string{
		model.UrgencyLow, model.UrgencyCritical, model.UrgencyMedium, model.UrgencyHigh,
	}
	sort.Slice(levels, func(i, j int) bool {
		return UrgencyRank(levels[i]) < UrgencyRank(levels[j])
	})
	assert.Equal(t, []string{
		model.UrgencyCritical, model.UrgencyHigh, model.UrgencyMedium, model.UrgencyLow,
	}, levels)
}
