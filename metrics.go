package qsim

// Metrics counts the work a simulator has done since it was created.
type Metrics struct {
	Allocations   int64
	Releases      int64
	Gates         int64
	Measurements  int64
	PeakStateSize int
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// observe records the size of the store after an operation.
func (m *Metrics) observe(size int) {
	if size > m.PeakStateSize {
		m.PeakStateSize = size
	}
}

func (m *Metrics) recordGate(size int) {
	m.Gates++
	m.observe(size)
}

func (m *Metrics) recordMeasurement(size int) {
	m.Measurements++
	m.observe(size)
}

// ExportMetrics returns a snapshot of the counters keyed by name.
func (m *Metrics) ExportMetrics() map[string]any {
	return map[string]any{
		"allocations":     m.Allocations,
		"releases":        m.Releases,
		"gates":           m.Gates,
		"measurements":    m.Measurements,
		"peak_state_size": m.PeakStateSize,
	}
}
