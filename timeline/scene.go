package timeline

import (
	"slices"

	"github.com/ankosk/gridline"
)

// ProjectScenes derives the ordered scene view models of a song. Scene order
// comes from the authored order in the metadata, with unknown scenes appended
// deterministically; start times accumulate so that scenes tile the timeline
// with no gaps and no overlap. The output always contains exactly one entry
// per scene in the document.
func ProjectScenes(song *gridline.Song, meta *Metadata, ids IDSource) []Scene {
	if song == nil {
		return nil
	}
	if ids == nil {
		ids = MetadataIDs{Meta: meta}
	}
	var sceneOrder []string
	if meta != nil {
		sceneOrder = meta.SceneOrder
	}
	order := gridline.ResolveOrder(song.Scenes, sceneOrder)
	scenes := make([]Scene, 0, len(order))
	start := 0.0
	for _, name := range order {
		def := song.Scenes[name]
		duration := def.Duration()
		scene := Scene{
			ID:              ids.EnsureID(KindScene, name),
			Name:            name,
			Start:           start,
			Duration:        duration,
			GlobalBarLength: def.GlobalBarLength,
			LengthInBars:    def.LengthInBars,
			AdvanceMode:     def.AdvanceMode,
			MutedTrackIDs:   mutedTrackIDs(def.InitialMutes, ids),
		}
		scenes = append(scenes, scene)
		start += duration
	}
	return scenes
}

func mutedTrackIDs(mutes []string, ids IDSource) []string {
	if len(mutes) == 0 {
		return nil
	}
	keys := append([]string(nil), mutes...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	ret := make([]string, 0, len(keys))
	for _, key := range keys {
		ret = append(ret, ids.EnsureID(KindTrack, key))
	}
	return ret
}
