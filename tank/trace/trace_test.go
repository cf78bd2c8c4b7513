package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(tm float64, top, bottom, qloss float64, mixing bool) StepRecord {
	return StepRecord{
		Time:         tm,
		SegmentTemps: []float64{top, bottom},
		OutletTemp:   bottom,
		QLoss:        qloss,
		MixingActive: mixing,
	}
}

func TestRunTrace_KeepsEveryRecordByDefault(t *testing.T) {
	rt := NewRunTrace(0)
	for i := 0; i < 5; i++ {
		rt.Record(record(float64(i), 350, 310, 40, false))
	}
	assert.Equal(t, 5, rt.Len())
	assert.Equal(t, 4.0, rt.Last().Time)
}

func TestRunTrace_SamplingInterval(t *testing.T) {
	rt := NewRunTrace(3)
	for i := 0; i < 10; i++ {
		rt.Record(record(float64(i), 350, 310, 40, false))
	}
	// Keeps records 0, 3, 6, 9.
	assert.Equal(t, 4, rt.Len())
	assert.Equal(t, 9.0, rt.Last().Time)
}

func TestRunTrace_LastOnEmptyTrace(t *testing.T) {
	rt := NewRunTrace(0)
	assert.Equal(t, StepRecord{}, rt.Last())
}

func TestSummarize_NilAndEmpty(t *testing.T) {
	assert.Equal(t, &TraceSummary{}, Summarize(nil))
	assert.Equal(t, &TraceSummary{}, Summarize(NewRunTrace(0)))
}

func TestSummarize_Aggregates(t *testing.T) {
	rt := NewRunTrace(0)
	rt.Record(record(0, 350, 310, 40, false))
	rt.Record(record(1, 348, 312, 50, true))
	rt.Record(record(2, 346, 314, 30, false))

	s := Summarize(rt)

	assert.Equal(t, 3, s.Records)
	assert.Equal(t, 2.0, s.Duration)
	assert.InDelta(t, 40.0, s.MeanQLoss, 1e-12)
	assert.Equal(t, 50.0, s.PeakQLoss)
	assert.Greater(t, s.StdQLoss, 0.0)
	assert.Equal(t, 1, s.MixingSteps)
	assert.Equal(t, 346.0, s.FinalTopTemp)
	assert.Equal(t, 314.0, s.FinalBotTemp)
	assert.InDelta(t, 32.0, s.FinalStratGap, 1e-12)
	assert.InDelta(t, 32.0, s.MinStratGap, 1e-12)
}
