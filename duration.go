package gridline

// Time units are quarter-note equivalents throughout: a full 16-step bar of
// 16th notes is DefaultTimeUnitsPerBar units long.
const DefaultTimeUnitsPerBar = 4.0

// timeBaseRatio scales a full bar at the given time base against a full bar
// of 16th notes. The label names the step value: at "8" each of the sixteen
// steps is an 8th note, so the bar runs twice as long; "T" marks triplet
// bases. Unknown labels fall back to the 16th-note baseline.
var timeBaseRatio = map[string]float64{
	"4":   4,
	"8":   2,
	"8T":  4.0 / 3,
	"16":  1,
	"16T": 2.0 / 3,
	"32":  1.0 / 2,
	"32T": 1.0 / 3,
}

// StepCount returns the number of steps the bar actually plays: LastStep when
// it is a sensible step index, otherwise the full lane width.
func (b *Bar) StepCount() int {
	if b.LastStep >= 1 && b.LastStep <= StepsPerBar {
		return b.LastStep
	}
	return StepsPerBar
}

// NominalLength returns the unexpanded length of the bar in time units: the
// played step count scaled by the time base, ignoring the repetition count.
func (b *Bar) NominalLength(timeUnitsPerBar float64) float64 {
	ratio, ok := timeBaseRatio[b.TimeBase]
	if !ok {
		ratio = 1
	}
	return timeUnitsPerBar * float64(b.StepCount()) / StepsPerBar * ratio
}

// Duration computes the pattern's total duration in time units. For a step
// pattern with conforming bar data it is the expanded duration: the sum of
// every bar's nominal length times its repetition count. Without trustworthy
// bar data it falls back to BarCount whole bars, and failing that to exactly
// one bar, so the result is always positive and the caller never needs an
// error path.
func (p *Pattern) Duration(timeUnitsPerBar float64) float64 {
	if timeUnitsPerBar <= 0 {
		timeUnitsPerBar = DefaultTimeUnitsPerBar
	}
	if p != nil && p.Kind == KindStep && len(p.Bars) > 0 && p.BarsValid() {
		total := 0.0
		for i := range p.Bars {
			bar := &p.Bars[i]
			reps := bar.Reps
			if reps < 1 {
				reps = 1
			}
			total += bar.NominalLength(timeUnitsPerBar) * float64(reps)
		}
		if total > 0 {
			return total
		}
	}
	if p != nil && p.BarCount >= 1 {
		return float64(p.BarCount) * timeUnitsPerBar
	}
	return timeUnitsPerBar
}

// BarsValid reports whether the pattern has bar data and every bar conforms
// to the step-sequencer format.
func (p *Pattern) BarsValid() bool {
	if len(p.Bars) == 0 {
		return false
	}
	for i := range p.Bars {
		if !p.Bars[i].Valid() {
			return false
		}
	}
	return true
}

// Duration returns the scene's length in time units. GlobalBarLength is
// expressed in 16th-note steps, so dividing by 4 yields the quarter-note
// length of one bar; this formula is exact, not an estimate.
func (s *Scene) Duration() float64 {
	return float64(s.LengthInBars) * float64(s.GlobalBarLength) / 4
}
