package gridline

import (
	"errors"
)

type (
	// Song is the native song document: the source-of-truth representation of
	// patterns, scenes and instrument assignments, independent of any UI
	// state. It is owned by the persistence layer and treated as read-only by
	// the projection code; all view models are derived from it and can be
	// recomputed at any time.
	Song struct {
		// Patterns maps a pattern name to its definition. Pattern names are
		// the keys scenes use in their assignments.
		Patterns map[string]Pattern `yaml:"patterns" json:"patterns"`

		// Scenes maps a scene name to its definition. The display order of
		// scenes is not the map order; it lives in the authoring metadata.
		Scenes map[string]Scene `yaml:"scenes" json:"scenes"`

		// Instruments maps a track key to its output assignment, if any.
		Instruments map[string]Instrument `yaml:"instrumentAssignments,omitempty" json:"instrumentAssignments,omitempty"`
	}

	// Pattern is a reusable named sequence definition. When a scene assigns
	// it to a track, it produces one positioned instance on the timeline.
	// Bars is only meaningful for KindStep patterns and may be absent for
	// patterns that were created but never opened in the step editor.
	Pattern struct {
		Kind         string             `yaml:"kind" json:"kind"`
		CreatorTrack int                `yaml:"creatorTrackNumber" json:"creatorTrackNumber"`
		Saved        bool               `yaml:"saved" json:"saved"`
		BarCount     int                `yaml:"barCount" json:"barCount"`
		Bars         []Bar              `yaml:"bars,omitempty" json:"bars,omitempty"`
		LoopStart    *int               `yaml:"loopStart,omitempty" json:"loopStart,omitempty"`
		LoopEnd      *int               `yaml:"loopEnd,omitempty" json:"loopEnd,omitempty"`
		Aux          *AuxAssignments    `yaml:"auxAssignments,omitempty" json:"auxAssignments,omitempty"`
		Accumulator  *AccumulatorConfig `yaml:"accumulatorConfig,omitempty" json:"accumulatorConfig,omitempty"`
	}

	// AuxAssignments maps the four auxiliary step lanes of a pattern to MIDI
	// controller numbers.
	AuxAssignments struct {
		A int `yaml:"a" json:"a"`
		B int `yaml:"b" json:"b"`
		C int `yaml:"c" json:"c"`
		D int `yaml:"d" json:"d"`
	}

	// AccumulatorConfig configures the per-pattern transpose accumulator.
	AccumulatorConfig struct {
		Min  int  `yaml:"min" json:"min"`
		Max  int  `yaml:"max" json:"max"`
		Step int  `yaml:"step" json:"step"`
		Wrap bool `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	}

	// Scene is a named section of the arrangement: a length in bars, a bar
	// length in 16th-note steps, and a mapping from track key to the pattern
	// assigned on that track for the duration of the scene.
	Scene struct {
		// GlobalBarLength is the length of one bar in 16th-note steps;
		// 16 means a full 4/4 bar.
		GlobalBarLength int `yaml:"globalBarLength" json:"globalBarLength"`

		LengthInBars int    `yaml:"lengthInBars" json:"lengthInBars"`
		AdvanceMode  string `yaml:"advanceMode" json:"advanceMode"`

		// Assignments maps a track key to the name of the pattern playing on
		// that track. Either side of the pair may dangle in a partially
		// edited document; projection skips those silently.
		Assignments map[string]string `yaml:"patternAssignments" json:"patternAssignments"`

		// InitialMutes lists track keys that start the scene muted.
		InitialMutes []string `yaml:"initialMutes,omitempty,flow" json:"initialMutes,omitempty"`
	}

	// Instrument is the output assignment of a track.
	Instrument struct {
		Output       string `yaml:"outputName" json:"outputName"`
		MultiChannel bool   `yaml:"multiChannel,omitempty" json:"multiChannel,omitempty"`
	}
)

// Pattern kinds. KindStep is the step-sequencer format with per-bar step
// parameter lanes; KindNote is a plain note pattern with no bar data.
const (
	KindStep = "step"
	KindNote = "note"
)

// Scene advance modes.
const (
	AdvanceAuto   = "auto"
	AdvanceManual = "manual"
)

// Copy makes a deep copy of a Pattern.
func (p *Pattern) Copy() Pattern {
	bars := make([]Bar, len(p.Bars))
	for i, b := range p.Bars {
		bars[i] = b.Copy()
	}
	ret := Pattern{
		Kind:         p.Kind,
		CreatorTrack: p.CreatorTrack,
		Saved:        p.Saved,
		BarCount:     p.BarCount,
		Bars:         bars,
	}
	if p.LoopStart != nil {
		v := *p.LoopStart
		ret.LoopStart = &v
	}
	if p.LoopEnd != nil {
		v := *p.LoopEnd
		ret.LoopEnd = &v
	}
	if p.Aux != nil {
		v := *p.Aux
		ret.Aux = &v
	}
	if p.Accumulator != nil {
		v := *p.Accumulator
		ret.Accumulator = &v
	}
	return ret
}

// Copy makes a deep copy of a Scene.
func (s *Scene) Copy() Scene {
	assignments := make(map[string]string, len(s.Assignments))
	for k, v := range s.Assignments {
		assignments[k] = v
	}
	mutes := make([]string, len(s.InitialMutes))
	copy(mutes, s.InitialMutes)
	return Scene{
		GlobalBarLength: s.GlobalBarLength,
		LengthInBars:    s.LengthInBars,
		AdvanceMode:     s.AdvanceMode,
		Assignments:     assignments,
		InitialMutes:    mutes,
	}
}

// Copy makes a deep copy of a Song.
func (s *Song) Copy() Song {
	patterns := make(map[string]Pattern, len(s.Patterns))
	for k, p := range s.Patterns {
		patterns[k] = p.Copy()
	}
	scenes := make(map[string]Scene, len(s.Scenes))
	for k, sc := range s.Scenes {
		scenes[k] = sc.Copy()
	}
	instruments := make(map[string]Instrument, len(s.Instruments))
	for k, i := range s.Instruments {
		instruments[k] = i
	}
	return Song{Patterns: patterns, Scenes: scenes, Instruments: instruments}
}

// TrackKeys returns the set of track keys referenced by any scene's
// assignments. Instrument assignments deliberately do not count: a stale
// instrument entry for a deleted track must not resurrect the track.
func (s *Song) TrackKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	for _, scene := range s.Scenes {
		for k := range scene.Assignments {
			keys[k] = struct{}{}
		}
	}
	return keys
}

// Validate checks if the Song looks like a valid document: every scene has a
// positive length, and every step pattern with bar data passes the bar format
// check. Projection itself never needs this to hold; it is a diagnostic for
// boundary code that wants to report problems instead of silently degrading.
func (s *Song) Validate() error {
	for name, scene := range s.Scenes {
		if scene.LengthInBars < 1 {
			return errors.New("scene " + name + " has a non-positive length")
		}
		if scene.GlobalBarLength < 1 {
			return errors.New("scene " + name + " has a non-positive bar length")
		}
	}
	for name, pat := range s.Patterns {
		if pat.Kind != KindStep && pat.Kind != KindNote {
			return errors.New("pattern " + name + " has an unknown kind")
		}
		for i := range pat.Bars {
			if !pat.Bars[i].Valid() {
				return errors.New("pattern " + name + " has malformed bar data")
			}
		}
	}
	return nil
}
