package trace

// Interval controls how often step records are kept. An interval of k keeps
// every k-th step; 0 or 1 keeps all of them.
type Interval int

// RunTrace collects step records during a tank simulation run.
type RunTrace struct {
	Interval Interval
	Steps    []StepRecord

	seen int
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(interval Interval) *RunTrace {
	if interval < 0 {
		interval = 0
	}
	return &RunTrace{Interval: interval, Steps: make([]StepRecord, 0)}
}

// Record appends a step record, honoring the sampling interval.
func (rt *RunTrace) Record(record StepRecord) {
	rt.seen++
	if rt.Interval > 1 && (rt.seen-1)%int(rt.Interval) != 0 {
		return
	}
	rt.Steps = append(rt.Steps, record)
}

// Len returns the number of kept records.
func (rt *RunTrace) Len() int { return len(rt.Steps) }

// Last returns the most recent kept record, or a zero record for an empty trace.
func (rt *RunTrace) Last() StepRecord {
	if len(rt.Steps) == 0 {
		return StepRecord{}
	}
	return rt.Steps[len(rt.Steps)-1]
}
