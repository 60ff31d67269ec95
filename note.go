package gridline

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch numbers are linear semitone values. The textual form is
// "<letter><optional #> <octave>", e.g. "C# 4"; PitchPlaceholder marks an
// empty step.
const (
	MinPitch = 0
	MaxPitch = 127

	// DefaultPitch is the reference pitch used when an increment starts from
	// an empty or unparsable step.
	DefaultPitch = 60

	PitchPlaceholder = "---"
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// PitchToNumber converts textual pitch notation to a pitch number. It returns
// -1 for the empty string, the placeholder marker, any string outside the
// grammar, and any pitch outside MinPitch..MaxPitch.
func PitchToNumber(text string) int {
	if text == "" || text == PitchPlaceholder {
		return -1
	}
	name, octaveText, found := strings.Cut(text, " ")
	if !found || name == "" || octaveText == "" {
		return -1
	}
	offset, ok := noteOffsets[name[0]]
	if !ok {
		return -1
	}
	switch {
	case len(name) == 1:
	case len(name) == 2 && name[1] == '#':
		offset++
	default:
		return -1
	}
	octave, err := strconv.Atoi(octaveText)
	if err != nil || octave < 0 {
		return -1
	}
	n := octave*12 + offset
	if n < MinPitch || n > MaxPitch {
		return -1
	}
	return n
}

// NumberToPitch converts a pitch number to its textual notation, or the
// placeholder marker if the number is out of range.
func NumberToPitch(n int) string {
	if n < MinPitch || n > MaxPitch {
		return PitchPlaceholder
	}
	return fmt.Sprintf("%s %d", noteNames[n%12], n/12)
}

// IncrementPitch transposes a textual pitch by delta semitones, clamping the
// result to the valid range. An unparsable starting pitch is treated as
// DefaultPitch before the delta is applied, so incrementing an empty step
// always yields a usable note.
func IncrementPitch(text string, delta int) string {
	n := PitchToNumber(text)
	if n < 0 {
		n = DefaultPitch
	}
	n += delta
	if n < MinPitch {
		n = MinPitch
	} else if n > MaxPitch {
		n = MaxPitch
	}
	return NumberToPitch(n)
}
