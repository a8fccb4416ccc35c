package cohort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		tiers []int
		want  []Span
	}{
		{"empty", 0, []int{4, 2}, nil},
		{"no tiers", 3, nil, []Span{{0, 1}, {1, 1}, {2, 1}}},
		{"exact multiple", 8, []int{4, 2}, []Span{{0, 4}, {4, 4}}},
		{"five against four", 5, []int{4, 2}, []Span{{0, 4}, {4, 1}}},
		{"seven against four", 7, []int{4, 2}, []Span{{0, 4}, {4, 2}, {6, 1}}},
		{"smaller than widest", 3, []int{8, 4}, []Span{{0, 1}, {1, 1}, {2, 1}}},
		{"three tiers", 15, []int{8, 4, 2}, []Span{{0, 8}, {8, 4}, {12, 2}, {14, 1}}},
		{"width one ignored", 2, []int{1}, []Span{{0, 1}, {1, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Plan(tc.n, tc.tiers))
		})
	}
}

func TestPlanCoversEveryJobOnce(t *testing.T) {
	tierSets := [][]int{nil, {2}, {4}, {4, 2}, {8, 4}, {8, 4, 2}, {16, 8, 4}}
	for _, tiers := range tierSets {
		for n := 0; n <= 40; n++ {
			spans := Plan(n, tiers)
			next := 0
			for _, s := range spans {
				assert.Equal(t, next, s.Start, "n=%d tiers=%v", n, tiers)
				assert.GreaterOrEqual(t, s.Width, 1)
				next = s.End()
			}
			assert.Equal(t, n, next, "n=%d tiers=%v", n, tiers)
		}
	}
}

func TestSpanLanes(t *testing.T) {
	assert.False(t, Span{Start: 3, Width: 1}.Lanes())
	assert.True(t, Span{Start: 0, Width: 2}.Lanes())
	assert.Equal(t, 7, Span{Start: 3, Width: 4}.End())
}

func TestAppendPlanReusesBuffer(t *testing.T) {
	buf := make([]Span, 0, 16)
	spans := AppendPlan(buf, 7, []int{4, 2})
	assert.Equal(t, Plan(7, []int{4, 2}), spans)
	assert.Same(t, &buf[:1][0], &spans[0])

	spans = AppendPlan(spans[:0], 0, []int{4})
	assert.Empty(t, spans)
}
