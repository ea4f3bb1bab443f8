package vec

// Slack returns the number of allocated slots not currently holding
// visible elements (Cap - Len).
func (v *Vector[T]) Slack() int {
	return v.capacity - v.size
}

// Utilization returns the ratio of visible elements to capacity
// (0.0 to 1.0). Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.capacity,
		Slack:       v.Slack(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Visible elements
	Cap         int     // Allocated slots
	Slack       int     // Allocated slots without visible elements
	Utilization float64 // Ratio of visible elements to capacity (0.0-1.0)
}
