package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNPS(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"all promoters", []int{9, 10, 8}, 100},
		{"all detractors", []int{1, 3, 6}, -100},
		{"balanced cancels out", []int{9, 9, 5, 5}, 0},
		{"passives ignored", []int{7, 7, 7}, 0},
		{"mixed rounds", []int{10, 9, 7, 4}, 25},
		{"single promoter", []int{8}, 100},
		{"rounding", []int{9, 9, 4}, 33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeNPS(tc.scores))
		})
	}
}
