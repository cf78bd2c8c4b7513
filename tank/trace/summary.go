package trace

import "gonum.org/v1/gonum/stat"

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	Records        int
	Duration       float64 // s, time of last kept record
	MeanQLoss      float64 // W
	PeakQLoss      float64 // W
	StdQLoss       float64 // W
	MixingSteps    int     // records where an inversion was being mixed out
	FinalTopTemp   float64 // K
	FinalBotTemp   float64 // K
	FinalStratGap  float64 // K, top minus bottom at the last record
	MinStratGap    float64 // K, smallest top-minus-bottom gap seen
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{}
	if rt == nil || len(rt.Steps) == 0 {
		return summary
	}

	qloss := make([]float64, len(rt.Steps))
	first := true
	for i, s := range rt.Steps {
		qloss[i] = s.QLoss
		if s.QLoss > summary.PeakQLoss {
			summary.PeakQLoss = s.QLoss
		}
		if s.MixingActive {
			summary.MixingSteps++
		}
		if len(s.SegmentTemps) > 0 {
			gap := s.SegmentTemps[0] - s.SegmentTemps[len(s.SegmentTemps)-1]
			if first || gap < summary.MinStratGap {
				summary.MinStratGap = gap
				first = false
			}
		}
	}

	summary.Records = len(rt.Steps)
	last := rt.Steps[len(rt.Steps)-1]
	summary.Duration = last.Time
	summary.MeanQLoss = stat.Mean(qloss, nil)
	if len(qloss) > 1 {
		summary.StdQLoss = stat.StdDev(qloss, nil)
	}
	if len(last.SegmentTemps) > 0 {
		summary.FinalTopTemp = last.SegmentTemps[0]
		summary.FinalBotTemp = last.SegmentTemps[len(last.SegmentTemps)-1]
		summary.FinalStratGap = summary.FinalTopTemp - summary.FinalBotTemp
	}
	return summary
}
