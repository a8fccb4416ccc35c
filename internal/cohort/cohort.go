package cohort

// Span is a run of consecutive jobs processed together.
type Span struct {
	Start int
	Width int
}

// End returns the index one past the last job in the span.
func (s Span) End() int {
	return s.Start + s.Width
}

// Lanes reports whether the span is stepped by a lane kernel.
func (s Span) Lanes() bool {
	return s.Width > 1
}

// Plan splits n jobs into spans. Cohorts of the widest tier come first; the
// remainder goes through successively narrower tiers, and whatever is left
// after the narrowest tier is emitted as single-job spans. Tiers must be
// sorted widest first; tiers below 2 are ignored.
func Plan(n int, tiers []int) []Span {
	if n <= 0 {
		return nil
	}
	return AppendPlan(make([]Span, 0, estimate(n, tiers)), n, tiers)
}

// AppendPlan appends the spans of Plan(n, tiers) to dst.
func AppendPlan(dst []Span, n int, tiers []int) []Span {
	start := 0
	for _, width := range tiers {
		if width < 2 {
			continue
		}
		for n-start >= width {
			dst = append(dst, Span{Start: start, Width: width})
			start += width
		}
	}
	for ; start < n; start++ {
		dst = append(dst, Span{Start: start, Width: 1})
	}
	return dst
}

func estimate(n int, tiers []int) int {
	if len(tiers) == 0 || tiers[0] < 2 {
		return n
	}
	return n/tiers[0] + len(tiers) + tiers[len(tiers)-1]
}
