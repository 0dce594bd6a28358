package dto

// AdvanceClockRequest moves the service clock forward
type AdvanceClockRequest struct {
	Seconds int64 `json:"seconds" binding:"required,gt=0"`
}

// ClockResponse reports the service clock
type ClockResponse struct {
	Now           int64 `json:"now"`
	OffsetSeconds int64 `json:"offsetSeconds"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    int64             `json:"time"`
	Checks  map[string]string `json:"checks,omitempty"`
	Storage string            `json:"storage"`
}
