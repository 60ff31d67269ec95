// Package timeline projects a native song document and its authoring
// metadata into flat, time-positioned view models that a timeline renderer
// can draw directly. All projections are pure functions over their inputs:
// identical inputs always produce identical (by value) outputs, so callers
// can memoize freely. The only effect anywhere in the package is minting a
// stable id for a newly observed native key, and that lives behind the
// IDSource collaborator.
package timeline

import "github.com/ankosk/gridline"

type (
	// Scene is the view model of one arrangement section, positioned on the
	// timeline. Scenes are contiguous: each Start is the running sum of the
	// durations before it.
	Scene struct {
		ID              string
		Name            string
		Start           float64
		Duration        float64
		GlobalBarLength int
		LengthInBars    int
		AdvanceMode     string

		// MutedTrackIDs holds the stable ids of tracks that begin this scene
		// muted, sorted for determinism.
		MutedTrackIDs []string
	}

	// Track is the view model of one timeline row.
	Track struct {
		ID        string
		Name      string
		Color     string
		Height    OptionalInteger
		Collapsed bool
	}

	// Pattern is one positioned pattern instance: the assignment of a named
	// pattern to a (scene, track) pair, flattened onto the timeline. Its ID
	// is a pure function of the scene id, track id and pattern name, so
	// repeated projections of the same document agree on identity.
	Pattern struct {
		ID            string
		TrackID       string
		Start         float64
		Duration      float64
		Label         string
		Kind          string
		SceneDuration float64
		Muted         bool

		// Bars carries the embedded step data for step-sequencer patterns
		// whose bar data passed validation; nil otherwise. It is a deep copy,
		// never an alias into the native document.
		Bars        []gridline.Bar
		LoopStart   *int
		LoopEnd     *int
		Aux         *gridline.AuxAssignments
		Accumulator *gridline.AccumulatorConfig
	}

	// Timeline bundles one complete projection of a song.
	Timeline struct {
		Scenes   []Scene
		Tracks   []Track
		Patterns []Pattern
	}
)

// Length returns the total timeline length in time units: the end of the
// last scene, or zero for an empty arrangement.
func (t Timeline) Length() float64 {
	if len(t.Scenes) == 0 {
		return 0
	}
	last := t.Scenes[len(t.Scenes)-1]
	return last.Start + last.Duration
}
