package timeline

import (
	"slices"
	"strings"

	"github.com/ankosk/gridline"
)

// ProjectPatterns flattens every (scene, track) pattern assignment into a
// positioned pattern instance. Assignments whose track key or pattern name no
// longer resolves are skipped silently; a partially edited document projects
// to whatever subset is still coherent. Iteration is over the already
// ordered scenes and the sorted assignment keys, so identical inputs yield
// identical output, element order included.
func ProjectPatterns(song *gridline.Song, meta *Metadata, ids IDSource, tracks []Track, scenes []Scene, timeUnitsPerBar float64) []Pattern {
	if song == nil {
		return nil
	}
	if ids == nil {
		ids = MetadataIDs{Meta: meta}
	}
	byID := make(map[string]*Track, len(tracks))
	for i := range tracks {
		byID[tracks[i].ID] = &tracks[i]
	}
	var out []Pattern
	for i := range scenes {
		scene := &scenes[i]
		native, ok := song.Scenes[scene.Name]
		if !ok {
			continue
		}
		keys := make([]string, 0, len(native.Assignments))
		for key := range native.Assignments {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, trackKey := range keys {
			patternName := native.Assignments[trackKey]
			track, ok := byID[ids.EnsureID(KindTrack, trackKey)]
			if !ok {
				continue
			}
			def, ok := song.Patterns[patternName]
			if !ok {
				continue
			}
			instance := Pattern{
				ID:            PatternID(scene.ID, track.ID, patternName),
				TrackID:       track.ID,
				Start:         scene.Start,
				Duration:      def.Duration(timeUnitsPerBar),
				Label:         patternName,
				Kind:          def.Kind,
				SceneDuration: scene.Duration,
				Muted:         slices.Contains(native.InitialMutes, trackKey),
			}
			if def.Kind == gridline.KindStep && def.BarsValid() {
				// Embed a copy, never a reference into the document.
				embedded := def.Copy()
				instance.Bars = embedded.Bars
				instance.LoopStart = embedded.LoopStart
				instance.LoopEnd = embedded.LoopEnd
				instance.Aux = embedded.Aux
				instance.Accumulator = embedded.Accumulator
			}
			out = append(out, instance)
		}
	}
	return out
}

// PatternID derives the identity of a pattern instance from its scene id,
// track id and pattern name. The function is total and stable: the same
// triple always joins to the same id, and whitespace runs in the name
// collapse to a single underscore so the join stays unambiguous.
func PatternID(sceneID, trackID, patternName string) string {
	return sceneID + ":" + trackID + ":" + sanitizeLabel(patternName)
}

func sanitizeLabel(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
