package gridline

// StepsPerBar is the fixed width of every step parameter lane. A bar always
// carries 16 slots per lane regardless of how many steps actually play
// (LastStep) or how the bar is clocked (TimeBase).
const StepsPerBar = 16

// Bar play directions.
const (
	DirForward  = "forward"
	DirBackward = "backward"
	DirPendulum = "pendulum"
)

type (
	// Bar is one repeatable unit of step-sequencer data within a pattern:
	// sixteen per-step parameter lanes plus bar-level scalars. Lanes are
	// slices rather than arrays so that malformed boundary data is
	// representable; Valid reports whether the bar conforms to the format.
	Bar struct {
		Pitch    []string `yaml:"pitch,flow" json:"pitch"`
		Velocity []int    `yaml:"velocity,flow" json:"velocity"`
		Gate     []int    `yaml:"gate,flow" json:"gate"`
		Delay    []int    `yaml:"delay,flow" json:"delay"`
		Aux1     []int    `yaml:"aux1,flow" json:"aux1"`
		Aux2     []int    `yaml:"aux2,flow" json:"aux2"`
		Aux3     []int    `yaml:"aux3,flow" json:"aux3"`
		Aux4     []int    `yaml:"aux4,flow" json:"aux4"`

		GateOn    []bool `yaml:"gateOn,flow" json:"gateOn"`
		Tie       []bool `yaml:"tie,flow" json:"tie"`
		Skip      []bool `yaml:"skip,flow" json:"skip"`
		Transpose []bool `yaml:"transpose,flow" json:"transpose"`
		Aux1On    []bool `yaml:"aux1On,flow" json:"aux1On"`
		Aux2On    []bool `yaml:"aux2On,flow" json:"aux2On"`
		Aux3On    []bool `yaml:"aux3On,flow" json:"aux3On"`
		Aux4On    []bool `yaml:"aux4On,flow" json:"aux4On"`

		Direction   string `yaml:"direction" json:"direction"`
		TimeBase    string `yaml:"timeBase" json:"timeBase"`
		LastStep    int    `yaml:"lastStep" json:"lastStep"`
		StartOffset int    `yaml:"startOffset" json:"startOffset"`
		Reps        int    `yaml:"reps" json:"reps"`
		GlobalSync  bool   `yaml:"globalSync" json:"globalSync"`
	}
)

// stepLaneNames are the loose-map field names of the sixteen step lanes, as
// they appear in a decoded document.
var stepLaneNames = []string{
	"pitch", "velocity", "gate", "delay",
	"aux1", "aux2", "aux3", "aux4",
	"gateOn", "tie", "skip", "transpose",
	"aux1On", "aux2On", "aux3On", "aux4On",
}

// Copy makes a deep copy of a Bar.
func (b *Bar) Copy() Bar {
	ret := *b
	ret.Pitch = append([]string(nil), b.Pitch...)
	ret.Velocity = append([]int(nil), b.Velocity...)
	ret.Gate = append([]int(nil), b.Gate...)
	ret.Delay = append([]int(nil), b.Delay...)
	ret.Aux1 = append([]int(nil), b.Aux1...)
	ret.Aux2 = append([]int(nil), b.Aux2...)
	ret.Aux3 = append([]int(nil), b.Aux3...)
	ret.Aux4 = append([]int(nil), b.Aux4...)
	ret.GateOn = append([]bool(nil), b.GateOn...)
	ret.Tie = append([]bool(nil), b.Tie...)
	ret.Skip = append([]bool(nil), b.Skip...)
	ret.Transpose = append([]bool(nil), b.Transpose...)
	ret.Aux1On = append([]bool(nil), b.Aux1On...)
	ret.Aux2On = append([]bool(nil), b.Aux2On...)
	ret.Aux3On = append([]bool(nil), b.Aux3On...)
	ret.Aux4On = append([]bool(nil), b.Aux4On...)
	return ret
}

// Valid reports whether the bar conforms to the step-sequencer format: a
// recognized play direction and every one of the sixteen lanes exactly
// StepsPerBar long. Everything downstream that does arithmetic on bar data
// must check this first.
func (b *Bar) Valid() bool {
	if b == nil {
		return false
	}
	switch b.Direction {
	case DirForward, DirBackward, DirPendulum:
	default:
		return false
	}
	intLanes := [][]int{b.Velocity, b.Gate, b.Delay, b.Aux1, b.Aux2, b.Aux3, b.Aux4}
	for _, lane := range intLanes {
		if len(lane) != StepsPerBar {
			return false
		}
	}
	boolLanes := [][]bool{b.GateOn, b.Tie, b.Skip, b.Transpose, b.Aux1On, b.Aux2On, b.Aux3On, b.Aux4On}
	for _, lane := range boolLanes {
		if len(lane) != StepsPerBar {
			return false
		}
	}
	return len(b.Pitch) == StepsPerBar
}

// ValidBar reports whether candidate is a conforming bar. It accepts a Bar,
// a *Bar, or a loosely typed map as decoded from JSON or YAML; anything else
// is rejected. It never panics and has no side effects, so it is safe to gate
// arbitrary user-entered data with it before that data touches the document.
func ValidBar(candidate any) bool {
	switch v := candidate.(type) {
	case Bar:
		return v.Valid()
	case *Bar:
		return v.Valid()
	case map[string]any:
		return validBarMap(v)
	}
	return false
}

func validBarMap(m map[string]any) bool {
	if !isString(m["direction"]) || !isString(m["timeBase"]) {
		return false
	}
	switch m["direction"] {
	case DirForward, DirBackward, DirPendulum:
	default:
		return false
	}
	if !isInt(m["lastStep"]) || !isInt(m["startOffset"]) || !isInt(m["reps"]) {
		return false
	}
	if !isBool(m["globalSync"]) {
		return false
	}
	for _, name := range stepLaneNames {
		if laneLen(m[name]) != StepsPerBar {
			return false
		}
	}
	return true
}

// ValidPattern reports whether candidate is a conforming pattern definition:
// a recognized kind, correctly typed pattern scalars and, if bar data is
// present, every bar passing ValidBar. Like ValidBar it accepts typed values
// or loose maps and rejects everything else.
func ValidPattern(candidate any) bool {
	switch v := candidate.(type) {
	case Pattern:
		return validPatternTyped(&v)
	case *Pattern:
		if v == nil {
			return false
		}
		return validPatternTyped(v)
	case map[string]any:
		return validPatternMap(v)
	}
	return false
}

func validPatternTyped(p *Pattern) bool {
	if p.Kind != KindStep && p.Kind != KindNote {
		return false
	}
	for i := range p.Bars {
		if !p.Bars[i].Valid() {
			return false
		}
	}
	return true
}

func validPatternMap(m map[string]any) bool {
	switch m["kind"] {
	case KindStep, KindNote:
	default:
		return false
	}
	if !isInt(m["creatorTrackNumber"]) || !isInt(m["barCount"]) {
		return false
	}
	if !isBool(m["saved"]) {
		return false
	}
	if bars, present := m["bars"]; present && bars != nil {
		list, ok := bars.([]any)
		if !ok {
			return false
		}
		for _, b := range list {
			if !ValidBar(b) {
				return false
			}
		}
	}
	return true
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// isInt accepts the integer encodings of both decoders: encoding/json decodes
// numbers to float64, yaml.v3 to int. Fractional values are not integers.
func isInt(v any) bool {
	switch n := v.(type) {
	case int:
		return true
	case int64:
		return true
	case float64:
		return n == float64(int64(n))
	}
	return false
}

// laneLen returns the length of a step lane candidate, or -1 if it is not an
// array-like value. Typed slices appear when the caller validates an already
// decoded Bar field; []any when the data comes straight from a decoder.
func laneLen(v any) int {
	switch lane := v.(type) {
	case []any:
		return len(lane)
	case []string:
		return len(lane)
	case []int:
		return len(lane)
	case []bool:
		return len(lane)
	case []float64:
		return len(lane)
	}
	return -1
}
