package timeline

import "github.com/ankosk/gridline"

// Project computes one complete timeline from a song and its metadata.
// A nil ids falls back to recording fresh ids into meta; a nil meta degrades
// to deterministic defaults throughout. Pass timeUnitsPerBar <= 0 to use
// gridline.DefaultTimeUnitsPerBar.
func Project(song *gridline.Song, meta *Metadata, ids IDSource, timeUnitsPerBar float64) Timeline {
	if ids == nil {
		ids = MetadataIDs{Meta: meta}
	}
	scenes := ProjectScenes(song, meta, ids)
	tracks := ProjectTracks(song, meta, ids)
	patterns := ProjectPatterns(song, meta, ids, tracks, scenes, timeUnitsPerBar)
	return Timeline{Scenes: scenes, Tracks: tracks, Patterns: patterns}
}
