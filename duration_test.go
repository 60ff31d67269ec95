package gridline

import "testing"

func TestSceneDuration(t *testing.T) {
	tests := []struct {
		globalBarLength int
		lengthInBars    int
		expected        float64
	}{
		{16, 8, 32}, // full 4/4 bars
		{8, 4, 8},   // half-length bars
		{16, 1, 4},
		{12, 2, 6}, // 3/4 bars
		{0, 4, 0},
	}
	for _, test := range tests {
		scene := Scene{GlobalBarLength: test.globalBarLength, LengthInBars: test.lengthInBars}
		if got := scene.Duration(); got != test.expected {
			t.Errorf("scene with globalBarLength %v, lengthInBars %v: duration %v, expected %v",
				test.globalBarLength, test.lengthInBars, got, test.expected)
		}
	}
}

func TestPatternDurationFallbacks(t *testing.T) {
	// No bars: BarCount whole bars.
	p := Pattern{Kind: KindStep, BarCount: 4}
	if got := p.Duration(4); got != 16 {
		t.Errorf("barCount fallback: got %v, expected 16", got)
	}
	// Neither bars nor barCount: exactly one bar.
	p = Pattern{Kind: KindNote}
	if got := p.Duration(4); got != 4 {
		t.Errorf("one-bar fallback: got %v, expected 4", got)
	}
	// Invalid bar data also falls back.
	bad := conformingBar()
	bad.Pitch = bad.Pitch[:15]
	p = Pattern{Kind: KindStep, BarCount: 2, Bars: []Bar{bad}}
	if got := p.Duration(4); got != 8 {
		t.Errorf("invalid bars should fall back to barCount: got %v, expected 8", got)
	}
	// Non-positive time units fall back to the package default.
	p = Pattern{Kind: KindNote, BarCount: 2}
	if got := p.Duration(0); got != 2*DefaultTimeUnitsPerBar {
		t.Errorf("default time units: got %v, expected %v", got, 2*DefaultTimeUnitsPerBar)
	}
	// The result is always positive.
	if got := (&Pattern{}).Duration(4); got <= 0 {
		t.Errorf("duration should always be positive, got %v", got)
	}
}

func TestPatternDurationExpanded(t *testing.T) {
	bar := func(timeBase string, lastStep, reps int) Bar {
		b := conformingBar()
		b.TimeBase = timeBase
		b.LastStep = lastStep
		b.Reps = reps
		return b
	}
	tests := []struct {
		name     string
		bars     []Bar
		expected float64
	}{
		{"one full bar", []Bar{bar("16", 16, 1)}, 4},
		{"repetition expands", []Bar{bar("16", 16, 3)}, 12},
		{"zero reps counts once", []Bar{bar("16", 16, 0)}, 4},
		{"half bar", []Bar{bar("16", 8, 1)}, 2},
		{"eighth base doubles", []Bar{bar("8", 16, 1)}, 8},
		{"thirtysecond base halves", []Bar{bar("32", 16, 1)}, 2},
		// Valid bar data is reported exactly, even below one bar; only the
		// fallback chain is floored at a full bar.
		{"short fast bar stays sub-bar", []Bar{bar("32", 4, 1)}, 0.5},
		{"triplet base", []Bar{bar("16T", 12, 1)}, 2},
		{"unknown base is treated as sixteenths", []Bar{bar("128", 16, 1)}, 4},
		{"bars sum", []Bar{bar("16", 16, 2), bar("8", 8, 1)}, 12},
	}
	for _, test := range tests {
		p := Pattern{Kind: KindStep, BarCount: 99, Bars: test.bars}
		if got := p.Duration(4); got != test.expected {
			t.Errorf("%v: got %v, expected %v", test.name, got, test.expected)
		}
	}
	// A note pattern ignores bar data even if present.
	p := Pattern{Kind: KindNote, BarCount: 2, Bars: []Bar{bar("16", 16, 4)}}
	if got := p.Duration(4); got != 8 {
		t.Errorf("note kind should use barCount: got %v, expected 8", got)
	}
}

func TestBarStepCount(t *testing.T) {
	b := conformingBar()
	b.LastStep = 12
	if got := b.StepCount(); got != 12 {
		t.Errorf("StepCount: got %v, expected 12", got)
	}
	for _, bad := range []int{0, -3, 17, 100} {
		b.LastStep = bad
		if got := b.StepCount(); got != StepsPerBar {
			t.Errorf("LastStep %v: got %v, expected %v", bad, got, StepsPerBar)
		}
	}
}
