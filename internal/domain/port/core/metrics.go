package core

// MetricsRecorder receives escrow operation outcomes
type MetricsRecorder interface {
	// ObserveOperation records one finished deposit or withdraw
	ObserveOperation(kind string, outcome string, elapsed Duration)
	// AddLocked adjusts the total amount held in escrow by delta token units
	AddLocked(delta float64)
}

// NoopMetricsRecorder discards all observations
type NoopMetricsRecorder struct{}

// ObserveOperation does nothing
func (NoopMetricsRecorder) ObserveOperation(string, string, Duration) {}

// AddLocked does nothing
func (NoopMetricsRecorder) AddLocked(float64) {}
