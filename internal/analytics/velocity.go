package analytics

import "sort"

// VelocityMetrics reports how quickly tasks move from creation to
// completion. Both fields are nil when no record carries a usable
// duration, which is distinct from a 0-hour completion.
type VelocityMetrics struct {
	AvgVelocityHours    *float64 `json:"avgVelocityHours"`
	MedianVelocityHours *float64 `json:"medianVelocityHours"`
}

// maxVelocityHours caps plausible completion times at 30 days; longer
// durations are stale blocks edited much later, not real task work.
const maxVelocityHours = 720

// CalculateTaskVelocity computes the mean and median completion time
// in hours over records with both timestamps present. Durations
// outside (0, 720] hours are dropped as noise. The median is the
// ascending-sorted element at floor(n/2), not an averaged median.
func CalculateTaskVelocity(records []TaskRecord) VelocityMetrics {
	var velocities []float64
	for _, r := range records {
		if h, ok := taskDurationHours(r); ok && h <= maxVelocityHours {
			velocities = append(velocities, h)
		}
	}

	if len(velocities) == 0 {
		return VelocityMetrics{}
	}

	sum := 0.0
	for _, v := range velocities {
		sum += v
	}
	avg := sum / float64(len(velocities))

	sort.Float64s(velocities)
	median := velocities[len(velocities)/2]

	return VelocityMetrics{AvgVelocityHours: &avg, MedianVelocityHours: &median}
}

// taskDurationHours returns the creation-to-completion span of r in
// hours. ok is false when either timestamp is missing or the span is
// not positive; invalid spans are excluded, never clamped.
func taskDurationHours(r TaskRecord) (float64, bool) {
	if r.CreateTime <= 0 || r.EditTime <= 0 {
		return 0, false
	}
	h := float64(r.EditTime-r.CreateTime) / (1000 * 60 * 60)
	if h <= 0 {
		return 0, false
	}
	return h, true
}
