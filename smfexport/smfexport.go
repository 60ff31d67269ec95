// Package smfexport renders a projected timeline into a Standard MIDI File.
// This is offline export only; nothing here plays audio or talks to a MIDI
// device. One file track is written per timeline track, and every
// step-sequencer pattern instance on it is expanded bar by bar, repetition
// by repetition, into note events.
package smfexport

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ankosk/gridline"
	"github.com/ankosk/gridline/timeline"
)

// Options controls the export. The zero value is usable.
type Options struct {
	// TicksPerQuarter is the SMF resolution; one time unit is one quarter
	// note. Defaults to 960.
	TicksPerQuarter uint16

	// Tempo in beats per minute. Defaults to 120.
	Tempo float64

	// TimeUnitsPerBar is the bar length assumption used when expanding step
	// times; <= 0 uses gridline.DefaultTimeUnitsPerBar.
	TimeUnitsPerBar float64

	// IncludeMuted also exports pattern instances that start muted.
	IncludeMuted bool
}

type event struct {
	tick uint32
	off  bool
	msg  midi.Message
}

// Write exports the timeline to w as a format 1 SMF. The output is a pure
// function of its inputs: exporting the same timeline twice produces
// identical bytes.
func Write(w io.Writer, tl timeline.Timeline, opts Options) error {
	ticksPerQuarter := opts.TicksPerQuarter
	if ticksPerQuarter == 0 {
		ticksPerQuarter = 960
	}
	tempo := opts.Tempo
	if tempo <= 0 {
		tempo = 120
	}
	timeUnitsPerBar := opts.TimeUnitsPerBar
	if timeUnitsPerBar <= 0 {
		timeUnitsPerBar = gridline.DefaultTimeUnitsPerBar
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName("arrangement"))
	meta.Add(0, smf.MetaTempo(tempo))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return fmt.Errorf("smfexport: %w", err)
	}

	for i, track := range tl.Tracks {
		channel := uint8(i % 16)
		events := trackEvents(tl.Patterns, track.ID, channel, timeUnitsPerBar, float64(ticksPerQuarter), opts.IncludeMuted)
		var t smf.Track
		t.Add(0, smf.MetaTrackSequenceName(track.Name))
		prev := uint32(0)
		for _, ev := range events {
			t.Add(ev.tick-prev, ev.msg)
			prev = ev.tick
		}
		t.Close(0)
		if err := s.Add(t); err != nil {
			return fmt.Errorf("smfexport: %w", err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("smfexport: %w", err)
	}
	return nil
}

// trackEvents expands every embedded pattern instance of one track into
// tick-sorted note on/off events.
func trackEvents(patterns []timeline.Pattern, trackID string, channel uint8, timeUnitsPerBar, ticksPerQuarter float64, includeMuted bool) []event {
	var events []event
	for pi := range patterns {
		p := &patterns[pi]
		if p.TrackID != trackID || len(p.Bars) == 0 {
			continue
		}
		if p.Muted && !includeMuted {
			continue
		}
		events = append(events, patternEvents(p, channel, timeUnitsPerBar, ticksPerQuarter)...)
	}
	// Offs sort before ons on the same tick so a repeated pitch retriggers
	// cleanly.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})
	return events
}

func patternEvents(p *timeline.Pattern, channel uint8, timeUnitsPerBar, ticksPerQuarter float64) []event {
	var events []event
	cursor := p.Start
	end := p.Start + p.Duration
	lastOnEnd := 0.0
	lastOnKey := uint8(0)
	haveOpen := false

	flush := func(until float64) {
		if haveOpen {
			events = append(events, event{tick: toTicks(until, ticksPerQuarter), off: true, msg: midi.NoteOff(channel, lastOnKey)})
			haveOpen = false
		}
	}

	for bi := range p.Bars {
		bar := &p.Bars[bi]
		if !bar.Valid() {
			// The projector only embeds validated bars, but a hand-built
			// timeline may not honor that; skipping is safer than indexing
			// short lanes.
			continue
		}
		steps := bar.StepCount()
		stepLen := bar.NominalLength(timeUnitsPerBar) / float64(steps)
		reps := bar.Reps
		if reps < 1 {
			reps = 1
		}
		for r := 0; r < reps; r++ {
			for s := 0; s < steps; s++ {
				if cursor >= end {
					break
				}
				stepEnd := cursor + stepLen
				switch {
				case bar.Skip[s]:
					// A skipped step plays nothing but still occupies its
					// slot on the timeline.
				case bar.Tie[s] && haveOpen:
					lastOnEnd = stepEnd
				case bar.GateOn[s]:
					key := gridline.PitchToNumber(bar.Pitch[s])
					if key < 0 {
						flush(lastOnEnd)
						break
					}
					start := cursor + stepDelay(bar.Delay[s])*stepLen
					until := lastOnEnd
					if haveOpen && lastOnKey == uint8(key) && until > start {
						// A delayed note lingering past the retrigger of the
						// same key must end at the retrigger, or its off
						// would silence the new note.
						until = start
					}
					flush(until)
					events = append(events, event{
						tick: toTicks(start, ticksPerQuarter),
						msg:  midi.NoteOn(channel, uint8(key), stepVelocity(bar.Velocity[s])),
					})
					lastOnKey = uint8(key)
					lastOnEnd = start + stepGate(bar.Gate[s])*stepLen
					haveOpen = true
				default:
					flush(lastOnEnd)
				}
				cursor = stepEnd
			}
		}
	}
	flush(lastOnEnd)
	return events
}

func toTicks(timeUnits, ticksPerQuarter float64) uint32 {
	if timeUnits < 0 {
		return 0
	}
	return uint32(math.Round(timeUnits * ticksPerQuarter))
}

// stepGate maps the gate-length parameter (percent of a step) to a fraction;
// zero and out-of-range values mean a full step.
func stepGate(gate int) float64 {
	if gate <= 0 || gate > 100 {
		return 1
	}
	return float64(gate) / 100
}

// stepDelay maps the step delay parameter (percent of a step) to a fraction.
func stepDelay(delay int) float64 {
	if delay <= 0 {
		return 0
	}
	if delay > 100 {
		return 1
	}
	return float64(delay) / 100
}

func stepVelocity(velocity int) uint8 {
	if velocity < 1 {
		return 1
	}
	if velocity > 127 {
		return 127
	}
	return uint8(velocity)
}
