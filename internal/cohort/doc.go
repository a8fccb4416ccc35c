// Package cohort partitions a batch of independent jobs into lane-width
// cohorts.
//
// Planning is independent of the hash family and of the lane width: the
// caller passes the lane tiers available on this CPU, widest first, and
// receives consecutive spans covering every job exactly once. Spans of
// width 1 are meant for the single-stream path.
package cohort
